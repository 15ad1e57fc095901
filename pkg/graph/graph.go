package graph

import (
	"slices"

	"github.com/matzehuels/dotkit/pkg/errors"
)

// Metadata stores arbitrary key-value pairs attached to nodes, edges, or the
// graph itself. Values are stringified when emitted into DOT attribute lists.
type Metadata map[string]any

// Edge is a distinct edge between two nodes. For undirected graphs the stored
// orientation is the one in which the edge was first added; the reverse
// orientation is never reported separately.
type Edge struct {
	From   string
	To     string
	Weight float64
	Attrs  Metadata
}

// Source is the read-only capability surface renderers and serializers
// consume. Edges must be distinct: undirected implementations must not
// report both (a, b) and (b, a).
type Source interface {
	Directed() bool
	Weighted() bool
	Nodes() []string
	Edges() []Edge
	Weight(from, to string) (float64, bool)
}

// Attributed is an optional capability for sources that carry node and edge
// attributes. A nil map means the element has no attributes.
type Attributed interface {
	NodeAttrs(id string) Metadata
	EdgeAttrs(from, to string) Metadata
}

// Graph is a directed or undirected, optionally weighted graph with string
// node IDs. The zero value is not usable; use New or NewWeighted.
//
// Nodes are reported in sorted ID order and edges in insertion order, so a
// graph built the same way always enumerates identically. This determinism
// is what the DOT encoder's byte-for-byte contract rests on.
type Graph struct {
	directed bool
	weighted bool
	nodes    map[string]Metadata
	edges    []Edge
	index    map[[2]string]int // canonical endpoint pair -> edges offset
	adj      map[string][]string
}

// New creates an empty unweighted graph.
func New(directed bool) *Graph {
	return &Graph{
		directed: directed,
		nodes:    make(map[string]Metadata),
		index:    make(map[[2]string]int),
		adj:      make(map[string][]string),
	}
}

// NewWeighted creates an empty weighted graph. Edge weights default to 0
// unless set via AddWeightedEdge or SetWeight.
func NewWeighted(directed bool) *Graph {
	g := New(directed)
	g.weighted = true
	return g
}

// Directed reports whether edges have direction.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether edges carry numeric weights.
func (g *Graph) Weighted() bool { return g.weighted }

// AddNode adds a node with the given ID. Adding an existing node is a no-op.
// Empty IDs are rejected.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return errors.New(errors.ErrCodeInvalidGraph, "node ID must not be empty")
	}
	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = nil
	}
	return nil
}

// SetNodeAttr sets a single attribute on a node, adding the node if needed.
func (g *Graph) SetNodeAttr(id, key string, value any) error {
	if err := g.AddNode(id); err != nil {
		return err
	}
	if g.nodes[id] == nil {
		g.nodes[id] = Metadata{}
	}
	g.nodes[id][key] = value
	return nil
}

// AddEdge adds an edge between two nodes, creating the endpoints if they do
// not exist. Re-adding an existing edge (in either orientation for undirected
// graphs) is a no-op.
func (g *Graph) AddEdge(from, to string) error {
	return g.addEdge(from, to, 0)
}

// AddWeightedEdge adds an edge carrying the given weight. If the edge already
// exists its weight is updated.
func (g *Graph) AddWeightedEdge(from, to string, weight float64) error {
	return g.addEdge(from, to, weight)
}

func (g *Graph) addEdge(from, to string, weight float64) error {
	if err := g.AddNode(from); err != nil {
		return err
	}
	if err := g.AddNode(to); err != nil {
		return err
	}

	key := g.edgeKey(from, to)
	if i, ok := g.index[key]; ok {
		g.edges[i].Weight = weight
		return nil
	}

	g.index[key] = len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.adj[from] = append(g.adj[from], to)
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], from)
	}
	return nil
}

// SetEdgeAttr sets a single attribute on an existing edge.
func (g *Graph) SetEdgeAttr(from, to, key string, value any) error {
	i, ok := g.index[g.edgeKey(from, to)]
	if !ok {
		return errors.New(errors.ErrCodeInvalidGraph, "no edge %s -> %s", from, to)
	}
	if g.edges[i].Attrs == nil {
		g.edges[i].Attrs = Metadata{}
	}
	g.edges[i].Attrs[key] = value
	return nil
}

// edgeKey returns the canonical index key for an endpoint pair. Undirected
// edges are keyed by their sorted endpoints so both orientations collide.
func (g *Graph) edgeKey(from, to string) [2]string {
	if !g.directed && to < from {
		return [2]string{to, from}
	}
	return [2]string{from, to}
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether an edge exists. For undirected graphs both
// orientations match.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.index[g.edgeKey(from, to)]
	return ok
}

// Nodes returns all node IDs in sorted order.
func (g *Graph) Nodes() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Edges returns the distinct edge sequence in insertion order.
func (g *Graph) Edges() []Edge {
	return slices.Clone(g.edges)
}

// Neighbors returns the successors of a node (all adjacent nodes for
// undirected graphs), in insertion order.
func (g *Graph) Neighbors(id string) []string {
	return slices.Clone(g.adj[id])
}

// Weight returns the weight of an edge, reporting false when the edge does
// not exist.
func (g *Graph) Weight(from, to string) (float64, bool) {
	i, ok := g.index[g.edgeKey(from, to)]
	if !ok {
		return 0, false
	}
	return g.edges[i].Weight, true
}

// NodeAttrs returns the attribute map of a node, or nil when the node has no
// attributes. The returned map must not be mutated.
func (g *Graph) NodeAttrs(id string) Metadata {
	return g.nodes[id]
}

// EdgeAttrs returns the attribute map of an edge, or nil when the edge has no
// attributes. The returned map must not be mutated.
func (g *Graph) EdgeAttrs(from, to string) Metadata {
	i, ok := g.index[g.edgeKey(from, to)]
	if !ok {
		return nil
	}
	return g.edges[i].Attrs
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Interface guards.
var (
	_ Source     = (*Graph)(nil)
	_ Attributed = (*Graph)(nil)
)
