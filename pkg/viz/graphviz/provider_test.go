package graphviz

import (
	"context"
	"testing"

	"github.com/matzehuels/dotkit/pkg/errors"
	"github.com/matzehuels/dotkit/pkg/graph"
	"github.com/matzehuels/dotkit/pkg/viz"
)

func TestSupportedFormatsInvariant(t *testing.T) {
	p := New()

	// Every offered kind returns a non-empty table; unknown kinds are absent.
	for _, kind := range []viz.Kind{viz.KindRenderer, viz.KindViewer, viz.KindSerializer} {
		table := p.SupportedFormats(kind)
		if len(table) == 0 {
			t.Errorf("SupportedFormats(%s) is empty, want at least one entry", kind)
		}
		for id, f := range table {
			if id != f.ID {
				t.Errorf("table key %q != descriptor ID %q", id, f.ID)
			}
		}
	}

	if table := p.SupportedFormats(viz.Kind(99)); table != nil {
		t.Errorf("SupportedFormats(unknown) = %v, want nil", table)
	}
}

func TestSupportedFormatsTableShape(t *testing.T) {
	p := New()

	renderer := p.SupportedFormats(viz.KindRenderer)
	if len(renderer) != 35 {
		t.Errorf("renderer table has %d formats, want 35", len(renderer))
	}
	if f, ok := renderer["png"]; !ok || !f.Binary {
		t.Errorf("renderer png = %+v, want binary entry", f)
	}
	if f, ok := renderer["svg"]; !ok || f.Binary {
		t.Errorf("renderer svg = %+v, want text entry", f)
	}

	serializer := p.SupportedFormats(viz.KindSerializer)
	for _, id := range []string{"canon", "dot", "gv", "xdot", "xdot1.2", "xdot1.4"} {
		if _, ok := serializer[id]; !ok {
			t.Errorf("serializer table missing %q", id)
		}
	}

	viewer := p.SupportedFormats(viz.KindViewer)
	if _, ok := viewer["xlib"]; !ok {
		t.Error("viewer table missing xlib")
	}
}

func TestSupportedFormatsReturnsCopy(t *testing.T) {
	p := New()
	table := p.SupportedFormats(viz.KindViewer)
	delete(table, "xlib")

	if _, ok := p.SupportedFormats(viz.KindViewer)["xlib"]; !ok {
		t.Error("mutating a returned table leaked into the provider's static table")
	}
}

func TestDefaultImplementations(t *testing.T) {
	p := New()

	tests := []struct {
		kind       viz.Kind
		wantFormat string
	}{
		{viz.KindRenderer, "png"},
		{viz.KindViewer, "xlib"},
		{viz.KindSerializer, "dot"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			impl, ok := p.Implementation(tt.kind)
			if !ok {
				t.Fatalf("Implementation(%s) ok = false", tt.kind)
			}
			handle := impl.Info()
			if handle.ProviderID != ProviderID {
				t.Errorf("ProviderID = %q, want %q", handle.ProviderID, ProviderID)
			}
			if handle.FormatID != tt.wantFormat {
				t.Errorf("FormatID = %q, want %q", handle.FormatID, tt.wantFormat)
			}
		})
	}

	if _, ok := p.Implementation(viz.Kind(99)); ok {
		t.Error("Implementation(unknown kind) ok = true, want false")
	}
}

func TestImplementationFor(t *testing.T) {
	p := New()

	tests := []struct {
		name       string
		kind       viz.Kind
		token      string
		wantOK     bool
		wantErr    bool
		wantFormat string
	}{
		{
			name:       "bare base keeps descriptor id",
			kind:       viz.KindRenderer,
			token:      "svg",
			wantOK:     true,
			wantFormat: "svg",
		},
		{
			name:       "engine override yields compound id",
			kind:       viz.KindRenderer,
			token:      "png:neato",
			wantOK:     true,
			wantFormat: "png:neato",
		},
		{
			name:       "full compound token round-trips",
			kind:       viz.KindRenderer,
			token:      "png:cairo:gd",
			wantOK:     true,
			wantFormat: "png:cairo:gd",
		},
		{
			name:   "unsupported base is absence",
			kind:   viz.KindRenderer,
			token:  "mp4",
			wantOK: false,
		},
		{
			name:   "viewer format not valid for renderer lookup",
			kind:   viz.KindViewer,
			token:  "pdf",
			wantOK: false,
		},
		{
			name:       "revisioned serializer format",
			kind:       viz.KindSerializer,
			token:      "xdot1.2",
			wantOK:     true,
			wantFormat: "xdot1.2",
		},
		{
			name:    "malformed token is an error",
			kind:    viz.KindRenderer,
			token:   "!!bad",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			impl, ok, err := p.ImplementationFor(tt.kind, tt.token)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeMalformedFormat) {
					t.Fatalf("error code = %v, want MALFORMED_FORMAT", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ImplementationFor error = %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			handle := impl.Info()
			if handle.ProviderID != ProviderID {
				t.Errorf("ProviderID = %q, want %q", handle.ProviderID, ProviderID)
			}
			if handle.FormatID != tt.wantFormat {
				t.Errorf("FormatID = %q, want %q", handle.FormatID, tt.wantFormat)
			}
		})
	}
}

func TestImplementationKinds(t *testing.T) {
	p := New()

	impl, _, err := p.ImplementationFor(viz.KindRenderer, "svg")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := impl.(viz.Renderer); !ok {
		t.Errorf("renderer implementation does not satisfy viz.Renderer")
	}

	impl, _, err = p.ImplementationFor(viz.KindViewer, "gtk")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := impl.(viz.Viewer); !ok {
		t.Errorf("viewer implementation does not satisfy viz.Viewer")
	}

	impl, _, err = p.ImplementationFor(viz.KindSerializer, "dot")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := impl.(viz.Serializer); !ok {
		t.Errorf("serializer implementation does not satisfy viz.Serializer")
	}
}

func TestSerializer(t *testing.T) {
	p := New()
	impl, _, err := p.ImplementationFor(viz.KindSerializer, "dot")
	if err != nil {
		t.Fatal(err)
	}
	s := impl.(viz.Serializer)

	if !s.CanEncode() {
		t.Error("CanEncode() = false, want true")
	}
	if s.CanDecode() {
		t.Error("CanDecode() = true, want false")
	}

	g := graph.New(true)
	g.AddEdge("a", "b")
	text, err := s.Encode(g, viz.RenderOptions{Name: "deps"})
	if err != nil {
		t.Fatalf("Encode error = %v", err)
	}
	want := `digraph "deps" {
  "a" -> "b"
  "a"
  "b"
}
`
	if text != want {
		t.Errorf("Encode() =\n%s\nwant:\n%s", text, want)
	}

	if _, err := s.Decode(text); !errors.Is(err, errors.ErrCodeUnsupportedOperation) {
		t.Errorf("Decode() code = %v, want UNSUPPORTED_OPERATION", errors.GetCode(err))
	}
}

func TestViewFileMissing(t *testing.T) {
	p := New()
	impl, _ := p.Implementation(viz.KindViewer)
	v := impl.(viz.Viewer)

	err := v.ViewFile(context.Background(), "/nonexistent/artifact.png")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ViewFile(missing) code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}
