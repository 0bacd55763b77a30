// Package core: thread-safe mutation and query methods for Graph.
//
// Adjacency is stored as a nested map adjacency[u][v] = weight, with the
// mirror entry kept in lockstep, giving constant-time edge insertion, lookup,
// and deletion. A single RWMutex guards adjacency and declaration order.
package core

// AddNode inserts a node with the given ID and no neighbors.
// Returns ErrEmptyNodeID if id is empty.
// If the node already exists, this is a no-op (idempotent): the existing
// adjacency entry and declaration-order position are untouched.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(id)

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adjacency[id]

	return exists
}

// AddEdge records the undirected edge (u,v) with the given weight, setting
// adjacency[u][v] and adjacency[v][u] together so the symmetry invariant
// holds on return. Endpoints absent from the graph are created implicitly
// with empty neighbor sets before the edge is inserted.
//
// Repeated identical calls are idempotent; conflicting weights for the same
// pair are last-write-wins. Zero and negative weights are accepted.
//
// Returns ErrEmptyNodeID if either endpoint is empty, or ErrLoopNotAllowed
// for u == v on a graph built with WithoutLoops().
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, weight int64) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if u == v {
		if g.rejectLoops {
			return ErrLoopNotAllowed
		}
		// Self-loop: a single entry keeps symmetry trivially.
		g.ensureNode(u)
		g.adjacency[u][u] = weight

		return nil
	}

	g.ensureNode(u)
	g.ensureNode(v)
	g.adjacency[u][v] = weight
	g.adjacency[v][u] = weight

	return nil
}

// RemoveEdge deletes the undirected edge (u,v) from both adjacency entries.
// The endpoints themselves remain in the graph.
// Returns ErrEdgeNotFound if the edge does not exist.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, ok := g.adjacency[u]
	if !ok {
		return ErrEdgeNotFound
	}
	if _, ok = nbrs[v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)

	return nil
}

// HasEdge reports whether the undirected edge (u,v) exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[u]
	if !ok {
		return false
	}
	_, ok = nbrs[v]

	return ok
}

// Weight returns the weight of the undirected edge (u,v).
// Returns ErrEdgeNotFound if the edge does not exist.
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[u]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	w, ok := nbrs[v]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Degree returns the number of distinct neighbors of id (a self-loop counts
// once). Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(nbrs), nil
}
