// Package viz is the provider/format dispatch layer for graph visualization.
//
// # Overview
//
// A [Provider] is a named source of renderer, viewer, and serializer
// implementations. Each provider publishes, per implementation [Kind], a
// table of [Format] descriptors it supports and manufactures stateless
// implementation handles bound to exactly one (provider, format) pair. The
// [Registry] maps provider IDs to providers; the CLI populates [Default]
// once at startup with explicit Register calls, so there is no hidden
// mutable dispatch table.
//
// # Format Negotiation
//
// Callers request implementations with a compound format token of the shape
//
//	base[:engine[:subformatter]]
//
// for example "png", "png:neato", or "png:neato:gd". [ParseFormat] splits
// the token; the provider looks up the base format in its table for the
// requested kind. A syntactically valid token whose base is unknown is an
// absence, not an error: [Provider.ImplementationFor] returns ok=false. Only
// a token that fails the grammar produces a MALFORMED_FORMAT error.
//
// When an engine override is present, the resolved handle reports the full
// compound token as its format ID, so callers round-trip exactly what they
// asked for.
//
// # Capabilities
//
// Implementations expose their operations through the [Renderer], [Viewer],
// and [Serializer] interfaces. Handles hold no graph state and are safe for
// concurrent, repeated use.
//
// # Usage
//
//	reg := viz.NewRegistry()
//	reg.Register(graphviz.New())
//
//	impl, ok, err := reg.Implementation("graphviz", viz.KindRenderer, "svg")
//	if err != nil || !ok {
//	    // malformed token or unsupported format
//	}
//	data, err := impl.(viz.Renderer).Render(ctx, g, viz.RenderOptions{})
package viz
