// Package graph provides the in-memory graph structure consumed by the
// dotkit rendering and serialization pipeline.
//
// # Overview
//
// A [Graph] is a directed or undirected, optionally weighted graph with
// string node identifiers and arbitrary key-value attributes on nodes and
// edges. The structure is deliberately simple: it exists to be described,
// rendered, and viewed, not to be a general-purpose graph-algorithms
// library. The few algorithms included ([Connected], [StronglyConnected])
// are heuristic inputs for layout-engine selection.
//
// # Capability Surface
//
// Renderers and serializers consume graphs through the read-only [Source]
// interface rather than the concrete type, so any structure that can
// enumerate nodes and distinct edges can be rendered. Attribute and label
// access are optional capabilities ([Attributed]); a Source that does not
// implement them is rendered without attributes.
//
// # Edges
//
// Edges returned by [Graph.Edges] are distinct: an undirected graph that
// was built with AddEdge(a, b) never reports both (a, b) and (b, a). This
// property is what allows the DOT encoder to emit each undirected edge
// exactly once.
//
// # JSON Format
//
// [Marshal] and [Unmarshal] provide a plain JSON interchange format with
// full round-trip fidelity:
//
//	{
//	  "directed": true,
//	  "nodes": [{"id": "a"}, {"id": "b", "attrs": {"color": "red"}}],
//	  "edges": [{"from": "a", "to": "b"}]
//	}
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. Once construction is
// complete, any number of goroutines may read it concurrently.
package graph
