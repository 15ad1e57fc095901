package viz

import (
	"testing"

	"github.com/matzehuels/dotkit/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected FormatSpec
		wantErr  bool
	}{
		{
			name:     "bare base",
			token:    "png",
			expected: FormatSpec{Base: "png"},
		},
		{
			name:     "base with engine",
			token:    "png:cairo",
			expected: FormatSpec{Base: "png", Engine: "cairo"},
		},
		{
			name:     "base with engine and formatter",
			token:    "png:cairo:gd",
			expected: FormatSpec{Base: "png", Engine: "cairo", Formatter: "gd"},
		},
		{
			name:     "underscores and dashes",
			token:    "plain-ext:dot_engine",
			expected: FormatSpec{Base: "plain-ext", Engine: "dot_engine"},
		},
		{
			name:     "revisioned format id",
			token:    "xdot1.2",
			expected: FormatSpec{Base: "xdot1.2"},
		},
		{name: "garbage", token: "!!bad", wantErr: true},
		{name: "empty", token: "", wantErr: true},
		{name: "empty segment", token: "png::gd", wantErr: true},
		{name: "trailing colon", token: "png:", wantErr: true},
		{name: "too many segments", token: "png:cairo:gd:extra", wantErr: true},
		{name: "dot in engine segment", token: "png:1.2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) error = nil, want MALFORMED_FORMAT", tt.token)
				}
				if !errors.Is(err, errors.ErrCodeMalformedFormat) {
					t.Errorf("ParseFormat(%q) code = %v, want MALFORMED_FORMAT", tt.token, errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tt.token, err)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %+v, want %+v", tt.token, got, tt.expected)
			}
		})
	}
}

func TestFormatSpecString(t *testing.T) {
	tests := []struct {
		spec     FormatSpec
		expected string
	}{
		{FormatSpec{Base: "png"}, "png"},
		{FormatSpec{Base: "png", Engine: "cairo"}, "png:cairo"},
		{FormatSpec{Base: "png", Engine: "cairo", Formatter: "gd"}, "png:cairo:gd"},
	}

	for _, tt := range tests {
		if got := tt.spec.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestParseFormatRoundTrips(t *testing.T) {
	for _, token := range []string{"png", "svg:neato", "png:cairo:gd"} {
		spec, err := ParseFormat(token)
		if err != nil {
			t.Fatalf("ParseFormat(%q) error = %v", token, err)
		}
		if spec.String() != token {
			t.Errorf("ParseFormat(%q).String() = %q, want the original token", token, spec.String())
		}
	}
}
