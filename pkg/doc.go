// Package pkg provides the core libraries for dotkit graph visualization.
//
// # Overview
//
// Dotkit turns graph descriptions into images, documents, and interchange
// formats by dispatching to pluggable visualization providers. The pkg
// directory is organized into four main areas:
//
//  1. [graph] - Graph model and JSON interchange codec
//  2. [dot] - Pure DOT encoding of graphs
//  3. [viz] - Provider contract, format tokens, and the registry, plus the
//     provider implementations under viz/
//  4. [cache], [desktop], [errors], [observability] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow through dotkit:
//
//	JSON graph file
//	         ↓
//	    [graph] package (model + codec)
//	         ↓
//	    [dot] package (DOT source)
//	         ↓
//	    [viz] provider (layout + rendering)
//	         ↓
//	    PNG/SVG/PDF/DOT/JSON output
//
// # Quick Start
//
// Load a graph and render it through the registry:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/dotkit/pkg/graph"
//	    "github.com/matzehuels/dotkit/pkg/viz"
//	    "github.com/matzehuels/dotkit/pkg/viz/graphviz"
//	)
//
//	// 1. Load the graph
//	g, _ := graph.ReadFile("graph.json")
//
//	// 2. Register a provider
//	r := viz.NewRegistry()
//	r.Register(graphviz.New())
//
//	// 3. Resolve an implementation from a format token
//	impl, ok, _ := r.Implementation("graphviz", viz.KindRenderer, "png:neato")
//	if !ok {
//	    // format not supported
//	}
//
//	// 4. Render
//	data, _ := impl.(viz.Renderer).Render(context.Background(), g, viz.RenderOptions{})
//
// # Main Packages
//
// ## Graph Model
//
// [graph] - Directed or undirected graphs with string node IDs, optional
// weights, and attribute metadata. Includes the JSON node-link interchange
// codec and small analysis helpers (connectivity, strong connectivity).
//
// [dot] - Deterministic encoding of graphs into DOT source. Pure string
// construction with fixed escaping rules; no external processes.
//
// ## Dispatch
//
// [viz] - The provider contract: format descriptors, compound format tokens
// (base[:engine[:subformatter]]), the three implementation kinds (renderer,
// viewer, serializer), and the provider registry.
//
// [viz/graphviz] - Provider backed by the external Graphviz binaries. Covers
// the full format table, windowing viewers, and DOT serialization, with a
// layout-engine heuristic driven by graph shape.
//
// [viz/embedded] - In-process renderer using the go-graphviz WebAssembly
// build. No external binary required; small format table.
//
// [viz/jsongraph] - Serializer for the JSON interchange format; the only
// provider that decodes as well as encodes.
//
// ## Infrastructure
//
// [cache] - Artifact cache keyed on graph content, provider, format, and
// engine. File and Redis backends plus a null cache.
//
// [desktop] - Platform dispatch for opening rendered artifacts with the
// desktop environment, and temp-file helpers.
//
// [errors] - Structured errors with stable codes and user-facing messages.
//
// [observability] - Optional hooks for render and cache instrumentation.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/viz/...        # Specific package
//	go test -run Example         # Examples only
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/graph
// [dot]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/dot
// [viz]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/viz
// [viz/graphviz]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/viz/graphviz
// [viz/embedded]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/viz/embedded
// [viz/jsongraph]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/viz/jsongraph
// [cache]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/cache
// [desktop]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/desktop
// [errors]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/observability
package pkg
