package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// jsonGraph is the canonical interchange shape. The format is human-readable
// and designed for round-trip fidelity: marshal then unmarshal produces a
// structurally identical graph.
type jsonGraph struct {
	Directed bool       `json:"directed"`
	Weighted bool       `json:"weighted,omitempty"`
	Nodes    []jsonNode `json:"nodes"`
	Edges    []jsonEdge `json:"edges"`
}

type jsonNode struct {
	ID    string   `json:"id"`
	Attrs Metadata `json:"attrs,omitempty"`
}

type jsonEdge struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Weight *float64 `json:"weight,omitempty"`
	Attrs  Metadata `json:"attrs,omitempty"`
}

// Marshal converts a graph to JSON bytes. Nodes are emitted in sorted ID
// order and edges in insertion order for deterministic output.
func Marshal(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON bytes into a graph.
func Unmarshal(data []byte) (*Graph, error) {
	return Read(bytes.NewReader(data))
}

// Write writes a graph as indented JSON to w.
func Write(g *Graph, w io.Writer) error {
	out := jsonGraph{
		Directed: g.directed,
		Weighted: g.weighted,
		Nodes:    make([]jsonNode, 0, g.NodeCount()),
		Edges:    make([]jsonEdge, 0, g.EdgeCount()),
	}

	for _, id := range g.Nodes() {
		out.Nodes = append(out.Nodes, jsonNode{ID: id, Attrs: g.nodes[id]})
	}
	for _, e := range g.edges {
		je := jsonEdge{From: e.From, To: e.To, Attrs: e.Attrs}
		if g.weighted {
			w := e.Weight
			je.Weight = &w
		}
		out.Edges = append(out.Edges, je)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a JSON graph from r.
func Read(r io.Reader) (*Graph, error) {
	var data jsonGraph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	var g *Graph
	if data.Weighted {
		g = NewWeighted(data.Directed)
	} else {
		g = New(data.Directed)
	}

	for _, n := range data.Nodes {
		if err := g.AddNode(n.ID); err != nil {
			return nil, fmt.Errorf("add node %s: %w", n.ID, err)
		}
		if len(n.Attrs) > 0 {
			g.nodes[n.ID] = n.Attrs
		}
	}
	for _, e := range data.Edges {
		weight := 0.0
		if e.Weight != nil {
			weight = *e.Weight
		}
		if err := g.addEdge(e.From, e.To, weight); err != nil {
			return nil, fmt.Errorf("add edge %s -> %s: %w", e.From, e.To, err)
		}
		if len(e.Attrs) > 0 {
			g.edges[g.index[g.edgeKey(e.From, e.To)]].Attrs = e.Attrs
		}
	}
	return g, nil
}

// WriteFile writes a graph to a JSON file with 0644 permissions.
func WriteFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// ReadFile reads a JSON file and returns the decoded graph.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// FromSource copies an arbitrary Source into a concrete Graph, preserving
// direction, weights, and (when the source is Attributed) attributes.
func FromSource(src Source) *Graph {
	if g, ok := src.(*Graph); ok {
		return g
	}

	var g *Graph
	if src.Weighted() {
		g = NewWeighted(src.Directed())
	} else {
		g = New(src.Directed())
	}
	attrs, _ := src.(Attributed)

	for _, id := range src.Nodes() {
		g.AddNode(id)
		if attrs != nil {
			if m := attrs.NodeAttrs(id); len(m) > 0 {
				g.nodes[id] = m
			}
		}
	}
	for _, e := range src.Edges() {
		g.addEdge(e.From, e.To, e.Weight)
		if attrs != nil {
			if m := attrs.EdgeAttrs(e.From, e.To); len(m) > 0 {
				g.edges[g.index[g.edgeKey(e.From, e.To)]].Attrs = m
			}
		}
	}
	return g
}

// Equal reports whether two graphs serialize identically: direction,
// weightedness, node sets with attributes, and distinct edge sequences with
// weights and attributes. Edge sequences follow insertion order, so graphs
// built with the same edges in a different order compare unequal.
func Equal(a, b *Graph) bool {
	aj, err := Marshal(a)
	if err != nil {
		return false
	}
	bj, err := Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(aj, bj)
}
