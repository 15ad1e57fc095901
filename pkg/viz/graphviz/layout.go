package graphviz

import (
	"github.com/matzehuels/dotkit/pkg/graph"
)

// Layout engine binaries shipped with Graphviz.
const (
	// EngineDot is the default layered layout.
	EngineDot = "dot"
	// EngineNeato is the spring-model layout.
	EngineNeato = "neato"
	// EngineCirco is the circular layout.
	EngineCirco = "circo"
	// EngineSfdp is the multiscale force-directed layout for large graphs.
	EngineSfdp = "sfdp"
	// EngineFdp is the force-directed layout.
	EngineFdp = "fdp"
	// EngineTwopi is the radial layout.
	EngineTwopi = "twopi"
)

// largeGraphThreshold is the node count above which shape analysis is
// skipped in favor of the large-graph engine.
const largeGraphThreshold = 100

// PickEngine chooses a default layout engine from the graph's shape. The
// heuristic is advisory only: an explicit engine in the format token or a
// Layout render option always wins.
//
//   - nil graph: dot
//   - more than 100 nodes: sfdp when directed, dot otherwise
//   - directed and strongly connected: circo
//   - directed, not strongly connected: neato
//   - undirected and connected: circo
//   - undirected, not connected: dot
func PickEngine(g graph.Source) string {
	if g == nil {
		return EngineDot
	}
	concrete := graph.FromSource(g)

	if concrete.NodeCount() > largeGraphThreshold {
		if concrete.Directed() {
			return EngineSfdp
		}
		return EngineDot
	}

	if concrete.Directed() {
		if graph.StronglyConnected(concrete) {
			return EngineCirco
		}
		return EngineNeato
	}

	if graph.Connected(concrete) {
		return EngineCirco
	}
	return EngineDot
}
