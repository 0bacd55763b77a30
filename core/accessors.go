// Package core: read-only accessors and cloning for Graph.
//
// Accessors return copies, never views into internal storage, so callers may
// mutate results freely. Neighbor and edge listings are sorted for
// deterministic iteration; Nodes() alone preserves declaration order.
package core

import "sort"

// Nodes returns all node IDs in declaration order (first insertion wins,
// whether the node arrived via AddNode, WithNodes, or implicitly through
// AddEdge). The returned slice is a copy.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes currently in the graph.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges (a self-loop counts as
// one edge).
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	entries, loops := 0, 0
	for id, nbrs := range g.adjacency {
		entries += len(nbrs)
		if _, ok := nbrs[id]; ok {
			loops++
		}
	}
	// Every non-loop edge contributes two entries, every loop exactly one.

	return (entries-loops)/2 + loops
}

// Neighbors returns the IDs adjacent to id, sorted lexicographically.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Strings(out)

	return out, nil
}

// Edges returns every undirected edge exactly once, endpoints in
// lexicographic order per edge and the listing sorted by (U, V).
// Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0)
	for u, nbrs := range g.adjacency {
		for v, w := range nbrs {
			if u > v {
				continue // mirror entry, already counted from the other side
			}
			out = append(out, Edge{U: u, V: v, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// AdjacencyMap returns a deep copy of the full adjacency mapping
// node → neighbor → weight. Mutating the result does not affect the graph.
// Complexity: O(V + E).
func (g *Graph) AdjacencyMap() map[string]map[string]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]map[string]int64, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		cp := make(map[string]int64, len(nbrs))
		for n, w := range nbrs {
			cp[n] = w
		}
		out[id] = cp
	}

	return out
}

// Clone returns a deep copy of the graph: same configuration, same nodes in
// the same declaration order, same edges and weights. The clone shares no
// storage with the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cl := &Graph{
		rejectLoops: g.rejectLoops,
		order:       make([]string, len(g.order)),
		adjacency:   make(map[string]map[string]int64, len(g.adjacency)),
	}
	copy(cl.order, g.order)
	for id, nbrs := range g.adjacency {
		cp := make(map[string]int64, len(nbrs))
		for n, w := range nbrs {
			cp[n] = w
		}
		cl.adjacency[id] = cp
	}

	return cl
}
