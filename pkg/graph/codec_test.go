package graph

import (
	"strings"
	"testing"
)

// roundTrip marshals a graph and unmarshals the result, failing the test on
// any error along the way.
func roundTrip(t *testing.T, g *Graph) *Graph {
	t.Helper()

	data, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	return got
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Graph
	}{
		{
			name:  "empty graph",
			build: func() *Graph { return New(true) },
		},
		{
			name: "four-node dag",
			build: func() *Graph {
				g := New(true)
				g.AddEdge("a", "b")
				g.AddEdge("a", "c")
				g.AddEdge("b", "d")
				g.AddEdge("c", "d")
				return g
			},
		},
		{
			name: "two-cycle",
			build: func() *Graph {
				g := New(true)
				g.AddEdge("a", "b")
				g.AddEdge("b", "a")
				return g
			},
		},
		{
			name: "undirected four nodes",
			build: func() *Graph {
				g := New(false)
				g.AddEdge("a", "b")
				g.AddEdge("b", "c")
				g.AddEdge("c", "d")
				return g
			},
		},
		{
			name: "weighted undirected",
			build: func() *Graph {
				g := NewWeighted(false)
				g.AddWeightedEdge("a", "b", 1.5)
				g.AddWeightedEdge("b", "c", 3)
				return g
			},
		},
		{
			name: "attributes preserved",
			build: func() *Graph {
				g := New(true)
				g.AddEdge("a", "b")
				g.SetNodeAttr("a", "color", "red")
				g.SetEdgeAttr("a", "b", "label", "dep")
				return g
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.build()
			got := roundTrip(t, g)
			if !Equal(g, got) {
				t.Errorf("round trip mismatch:\noriginal: %+v\ndecoded:  %+v", g, got)
			}
		})
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	if _, err := Unmarshal([]byte("{not json")); err == nil {
		t.Error("Unmarshal(garbage) error = nil, want error")
	}
	if _, err := Unmarshal([]byte(`{"nodes": [{"id": ""}], "edges": []}`)); err == nil {
		t.Error("Unmarshal(empty node ID) error = nil, want error")
	}
}

func TestMarshalDeterministic(t *testing.T) {
	g := New(true)
	g.AddEdge("c", "a")
	g.AddEdge("b", "a")

	first, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	second, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(first) != string(second) {
		t.Error("Marshal is not deterministic across calls")
	}

	// Nodes appear in sorted order regardless of insertion order.
	text := string(first)
	if strings.Index(text, `"id": "a"`) > strings.Index(text, `"id": "c"`) {
		t.Error("nodes are not sorted by ID in serialized output")
	}
}

func TestFromSource(t *testing.T) {
	g := NewWeighted(true)
	g.AddWeightedEdge("a", "b", 4)
	g.SetNodeAttr("a", "shape", "box")

	copied := FromSource(g)
	if copied != g {
		t.Error("FromSource(*Graph) should return the graph unchanged")
	}
}
