package graph

// Connected reports whether the graph is connected when edge direction is
// ignored. The empty graph is considered connected.
func Connected(g *Graph) bool {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return true
	}

	undirected := g.adj
	if g.directed {
		// Build a symmetric adjacency view for the traversal.
		undirected = make(map[string][]string, len(g.nodes))
		for _, e := range g.edges {
			undirected[e.From] = append(undirected[e.From], e.To)
			if e.From != e.To {
				undirected[e.To] = append(undirected[e.To], e.From)
			}
		}
	}

	seen := map[string]bool{nodes[0]: true}
	queue := []string{nodes[0]}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range undirected[cur] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return len(seen) == len(nodes)
}

// StronglyConnected reports whether every node can reach every other node
// following edge direction. For undirected graphs this is plain connectivity.
// The empty graph is considered strongly connected.
func StronglyConnected(g *Graph) bool {
	if !g.directed {
		return Connected(g)
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return true
	}
	return len(reachable(g.adj, nodes[0])) == len(nodes) &&
		len(reachable(reverse(g), nodes[0])) == len(nodes)
}

// reachable returns the set of nodes reachable from start in adj.
func reachable(adj map[string][]string, start string) map[string]bool {
	seen := map[string]bool{start: true}
	stack := []string{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range adj[cur] {
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return seen
}

// reverse builds the transposed adjacency of a directed graph.
func reverse(g *Graph) map[string][]string {
	rev := make(map[string][]string, len(g.nodes))
	for _, e := range g.edges {
		rev[e.To] = append(rev[e.To], e.From)
	}
	return rev
}
