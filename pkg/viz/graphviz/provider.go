package graphviz

import (
	"context"
	"os"

	"github.com/matzehuels/dotkit/pkg/desktop"
	"github.com/matzehuels/dotkit/pkg/dot"
	"github.com/matzehuels/dotkit/pkg/errors"
	"github.com/matzehuels/dotkit/pkg/graph"
	"github.com/matzehuels/dotkit/pkg/viz"
)

// ProviderID is the registry identifier of this provider.
const ProviderID = "graphviz"

// Provider offers renderer, viewer, and serializer implementations backed
// by the external Graphviz layout engines. The provider and every handle it
// manufactures are stateless and safe for concurrent reuse.
type Provider struct{}

// New creates the Graphviz provider.
func New() *Provider { return &Provider{} }

// ID returns "graphviz".
func (p *Provider) ID() string { return ProviderID }

// SupportedFormats returns a copy of the static format table for the kind,
// or nil for kinds this provider does not offer.
func (p *Provider) SupportedFormats(kind viz.Kind) map[string]viz.Format {
	return cloneTable(tableFor(kind))
}

// Implementation returns the implementation for the kind's fixed default
// format: png for rendering, xlib for viewing, dot for serialization.
func (p *Provider) Implementation(kind viz.Kind) (viz.Implementation, bool) {
	switch kind {
	case viz.KindRenderer:
		return p.bind(kind, viz.FormatSpec{Base: defaultRenderFormat}, defaultRenderFormat), true
	case viz.KindViewer:
		return p.bind(kind, viz.FormatSpec{Base: defaultViewFormat}, defaultViewFormat), true
	case viz.KindSerializer:
		return p.bind(kind, viz.FormatSpec{Base: defaultSerializeFormat}, defaultSerializeFormat), true
	default:
		return nil, false
	}
}

// ImplementationFor resolves a compound format token against the kind's
// table. Lookup uses only the token's base; the handle reports the full
// compound token as its format ID when an engine override was supplied.
func (p *Provider) ImplementationFor(kind viz.Kind, token string) (viz.Implementation, bool, error) {
	spec, err := viz.ParseFormat(token)
	if err != nil {
		return nil, false, err
	}

	desc, ok := tableFor(kind)[spec.Base]
	if !ok {
		return nil, false, nil
	}

	formatID := desc.ID
	if spec.Engine != "" {
		formatID = spec.String()
	}
	return p.bind(kind, spec, formatID), true, nil
}

// bind manufactures the implementation for a resolved (kind, format) pair.
func (p *Provider) bind(kind viz.Kind, spec viz.FormatSpec, formatID string) viz.Implementation {
	handle := viz.Handle{ProviderID: ProviderID, FormatID: formatID}
	switch kind {
	case viz.KindViewer:
		return &viewer{handle: handle, spec: spec}
	case viz.KindSerializer:
		return &serializer{handle: handle, spec: spec}
	default:
		return &renderer{handle: handle, spec: spec}
	}
}

// encodeGraph produces the DOT text shared by all three implementation kinds.
func encodeGraph(g graph.Source, opts viz.RenderOptions) string {
	return dot.Marshal(g, dot.Options{
		Name:       opts.Name,
		GraphAttrs: opts.GraphAttrs,
		NodeLabel:  opts.NodeLabel,
		EdgeLabel:  opts.EdgeLabel,
	})
}

// pickEngine resolves the layout engine: an explicit Layout option wins,
// then the format token's engine override, then the shape heuristic.
func pickEngine(g graph.Source, spec viz.FormatSpec, opts viz.RenderOptions) string {
	if opts.Layout != "" {
		return opts.Layout
	}
	if spec.Engine != "" {
		return spec.Engine
	}
	return PickEngine(g)
}

// formatArg builds the -T value: the base format, qualified with the
// sub-formatter override when one was supplied.
func formatArg(spec viz.FormatSpec) string {
	if spec.Formatter != "" {
		return spec.Base + ":" + spec.Formatter
	}
	return spec.Base
}

// =============================================================================
// Renderer
// =============================================================================

type renderer struct {
	handle viz.Handle
	spec   viz.FormatSpec
}

func (r *renderer) Info() viz.Handle { return r.handle }

// Render lays out the graph with the chosen engine and returns the produced
// artifact bytes.
func (r *renderer) Render(ctx context.Context, g graph.Source, opts viz.RenderOptions) ([]byte, error) {
	return run(ctx, request{
		Engine: pickEngine(g, r.spec, opts),
		Format: formatArg(r.spec),
		Input:  []byte(encodeGraph(g, opts)),
	})
}

// RenderFile writes the artifact to path via the engine's -o flag. A partial
// file left behind by a failed invocation is removed.
func (r *renderer) RenderFile(ctx context.Context, g graph.Source, path string, opts viz.RenderOptions) error {
	_, err := run(ctx, request{
		Engine:     pickEngine(g, r.spec, opts),
		Format:     formatArg(r.spec),
		Input:      []byte(encodeGraph(g, opts)),
		OutputPath: path,
	})
	if err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}

// =============================================================================
// Viewer
// =============================================================================

type viewer struct {
	handle viz.Handle
	spec   viz.FormatSpec
}

func (v *viewer) Info() viz.Handle { return v.handle }

// View displays the graph. Windowing-canvas formats make the engine open a
// display window itself, so the call blocks until the window is closed.
func (v *viewer) View(ctx context.Context, g graph.Source, opts viz.RenderOptions) error {
	_, err := run(ctx, request{
		Engine: pickEngine(g, v.spec, opts),
		Format: formatArg(v.spec),
		Input:  []byte(encodeGraph(g, opts)),
	})
	return err
}

// ViewData saves rendered bytes under a temporary name and opens them with
// the desktop environment. The desktop application owns the file from then
// on, so it is not removed here.
func (v *viewer) ViewData(ctx context.Context, data []byte, ext string) error {
	path, err := desktop.Save(data, desktop.TempPath(ext))
	if err != nil {
		return err
	}
	return desktop.Open(ctx, path)
}

// ViewFile opens an existing artifact with the desktop environment.
func (v *viewer) ViewFile(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "no artifact at %s", path)
	}
	return desktop.Open(ctx, path)
}

// =============================================================================
// Serializer
// =============================================================================

type serializer struct {
	handle viz.Handle
	spec   viz.FormatSpec
}

func (s *serializer) Info() viz.Handle { return s.handle }

// Encode produces the DOT-family description of the graph. All dot-family
// formats share the same generated source; the dialect only matters once a
// layout engine processes it.
func (s *serializer) Encode(g graph.Source, opts viz.RenderOptions) (string, error) {
	return encodeGraph(g, opts), nil
}

// Decode is not supported: this core generates DOT, it does not parse it.
func (s *serializer) Decode(text string) (*graph.Graph, error) {
	return nil, errors.New(errors.ErrCodeUnsupportedOperation, "graphviz serializer cannot decode DOT text")
}

// CanEncode reports true.
func (s *serializer) CanEncode() bool { return true }

// CanDecode reports false.
func (s *serializer) CanDecode() bool { return false }

// Interface guards.
var (
	_ viz.Provider   = (*Provider)(nil)
	_ viz.Renderer   = (*renderer)(nil)
	_ viz.Viewer     = (*viewer)(nil)
	_ viz.Serializer = (*serializer)(nil)
)
