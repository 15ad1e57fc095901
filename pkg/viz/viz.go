package viz

import (
	"context"

	"github.com/matzehuels/dotkit/pkg/graph"
)

// Kind identifies one of the three implementation families a provider can
// offer.
type Kind int

const (
	// KindRenderer produces image or document bytes from a graph.
	KindRenderer Kind = iota
	// KindViewer displays a graph or rendered artifact on the desktop.
	KindViewer
	// KindSerializer converts graphs to and from a textual description.
	KindSerializer
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindRenderer:
		return "renderer"
	case KindViewer:
		return "viewer"
	case KindSerializer:
		return "serializer"
	default:
		return "unknown"
	}
}

// Format describes one supported output format. Descriptors are immutable
// values identified by ID; a provider's supported-format table maps format
// IDs to descriptors.
type Format struct {
	ID          string // format identifier, e.g. "png"
	ShortName   string // human-readable name, e.g. "PNG image"
	Binary      bool   // true when the produced data is binary, not text
	Description string
}

// Handle identifies a manufactured implementation: which provider owns it
// and which resolved format it is bound to. When the requested token carried
// an engine override, FormatID is the full compound token.
type Handle struct {
	ProviderID string
	FormatID   string
}

// Implementation is the common surface of all manufactured instances.
// Implementations are stateless and safe for concurrent reuse.
type Implementation interface {
	Info() Handle
}

// RenderOptions configures rendering and viewing operations.
type RenderOptions struct {
	// Name is the graph name emitted into the generated description.
	Name string

	// Layout forces a specific layout algorithm, bypassing both the format
	// token's engine override and the shape heuristic.
	Layout string

	// GraphAttrs is an optional top-level graph attribute mapping.
	GraphAttrs graph.Metadata

	// NodeLabel and EdgeLabel override the default label functions, which
	// look up the "label" attribute when the source exposes attributes.
	NodeLabel func(id string) (string, bool)
	EdgeLabel func(from, to string) (string, bool)
}

// Renderer renders graphs into image or document bytes.
type Renderer interface {
	Implementation

	// Render produces the artifact in memory.
	Render(ctx context.Context, g graph.Source, opts RenderOptions) ([]byte, error)

	// RenderFile writes the artifact to path. Partial output is removed on
	// failure.
	RenderFile(ctx context.Context, g graph.Source, path string, opts RenderOptions) error
}

// Viewer displays graphs or rendered artifacts.
type Viewer interface {
	Implementation

	// View renders the graph and displays it.
	View(ctx context.Context, g graph.Source, opts RenderOptions) error

	// ViewData saves already-rendered bytes under a temporary name with the
	// given extension and opens them with the desktop environment.
	ViewData(ctx context.Context, data []byte, ext string) error

	// ViewFile opens an existing rendered artifact.
	ViewFile(ctx context.Context, path string) error
}

// Serializer converts graphs to and from a textual description. Not every
// serializer supports both directions; consult CanEncode and CanDecode
// before relying on an operation, or handle UNSUPPORTED_OPERATION errors.
type Serializer interface {
	Implementation

	Encode(g graph.Source, opts RenderOptions) (string, error)
	Decode(text string) (*graph.Graph, error)
	CanEncode() bool
	CanDecode() bool
}

// Provider is a named source of implementations. Providers are constructed
// once, live for the process, and are never mutated.
type Provider interface {
	// ID returns the provider identifier used for registry lookup.
	ID() string

	// SupportedFormats returns the format table for a kind, or nil when the
	// provider has no implementations of that kind. A non-nil table is never
	// empty.
	SupportedFormats(kind Kind) map[string]Format

	// Implementation returns the implementation for the provider's fixed
	// default format of the given kind, or ok=false when the kind is not
	// offered.
	Implementation(kind Kind) (Implementation, bool)

	// ImplementationFor resolves a compound format token against the kind's
	// table. A token that fails the grammar yields a MALFORMED_FORMAT error;
	// a well-formed token with an unsupported base yields ok=false with a
	// nil error.
	ImplementationFor(kind Kind, token string) (Implementation, bool, error)
}
