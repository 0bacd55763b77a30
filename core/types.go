// Package core defines the central Graph type and its construction options.
//
// This file declares the Graph struct, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID    - node identifier is the empty string.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that an operation received an empty node identifier.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is a symmetric weighted link between two nodes, reported with
// endpoints in lexicographic order (U <= V) so listings are deterministic.
type Edge struct {
	// U is the lexicographically smaller endpoint.
	U string

	// V is the lexicographically larger endpoint (equal to U for self-loops).
	V string

	// Weight is the cost of the link. Zero and negative values are legal.
	Weight int64
}

// GraphOption configures behavior of a Graph at construction time.
type GraphOption func(g *Graph)

// WithNodes pre-declares nodes in the given order before any edges exist.
// Empty identifiers are ignored; duplicates are idempotent.
func WithNodes(ids ...string) GraphOption {
	return func(g *Graph) {
		for _, id := range ids {
			if id == "" {
				continue
			}
			g.ensureNode(id)
		}
	}
}

// WithoutLoops makes AddEdge reject self-loops with ErrLoopNotAllowed.
// By default self-loops are accepted and stored once.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.rejectLoops = true }
}

// Graph is the core in-memory adjacency structure.
//
// adjacency[u][v] holds the weight of the undirected edge (u,v); the mirror
// entry adjacency[v][u] always holds the same value. order lists node IDs in
// first-insertion order. mu guards both.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	rejectLoops bool // reject self-loops when true

	// Storage
	order     []string                    // node IDs in declaration order
	adjacency map[string]map[string]int64 // node → neighbor → weight
}

// NewGraph creates an empty Graph with the given options applied in order.
// By default the Graph is undirected, weighted, and permits self-loops.
// Complexity: O(len(opts)) plus the cost of each option.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string]map[string]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// ensureNode creates the adjacency entry and order slot for id if absent.
// Caller must hold the write lock (or be inside construction).
func (g *Graph) ensureNode(id string) {
	if _, exists := g.adjacency[id]; exists {
		return
	}
	g.adjacency[id] = make(map[string]int64)
	g.order = append(g.order, id)
}
