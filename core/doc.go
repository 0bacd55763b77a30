// Package core provides a thread-safe, in-memory undirected weighted graph
// keyed by string node identifiers.
//
// The Graph stores adjacency as a nested map node → neighbor → weight and
// maintains two invariants at all times:
//
//   - Symmetry: whenever weight w is recorded for (u,v), the same weight is
//     recorded for (v,u). Edges are undirected by construction.
//   - Presence: every node ever added, explicitly via AddNode or implicitly
//     as an edge endpoint, owns a (possibly empty) adjacency entry.
//
// Node declaration order is preserved: Nodes() reports identifiers in the
// order they first entered the graph, which matters for topology files where
// the node section is ordered.
//
// Edge semantics follow the classic routing-simulation input model:
//
//   - AddEdge is idempotent for identical repeated calls.
//   - Conflicting weights for the same pair are last-write-wins.
//   - Zero and negative weights are accepted; cost validation belongs to the
//     algorithms that consume the graph, not to storage.
//   - Self-loops are permitted by default and stored once; WithoutLoops()
//     rejects them with ErrLoopNotAllowed.
//
// All methods are safe for concurrent use: mutations take a write lock,
// queries a read lock, on a single sync.RWMutex guarding both the adjacency
// and the declaration-order list.
package core
