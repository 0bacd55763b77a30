// Package netlab is a small toolkit for ingesting network topologies and
// running deterministic protocol simulations on top of them.
//
// 🚀 What is netlab?
//
//	A thread-safe library plus a tiny CLI that brings together:
//		• core/  — undirected weighted adjacency graphs with string node IDs
//		• topo/  — the two-section (nodes, START, edges, UPDATE) wire loader,
//		           plus a declarative YAML topology document
//		• reach/ — BFS reachability and hop counts over a loaded topology
//		• spath/ — Dijkstra shortest paths over non-negative link costs
//		• sim/   — a deterministic single-threaded discrete-event scheduler
//		• srp/   — selective-repeat ARQ endpoints and a lossy channel model
//
// ✨ Why netlab?
//
//   - Faithful ingestion: the loader reproduces the classic node-list /
//     edge-list stream format exactly, hardened with explicit parse errors
//   - Deterministic simulations: FIFO tie-break event queue, seeded channels
//   - Minimal API: small packages, sentinel errors, functional options
//
// Quick ASCII example of a loaded topology:
//
//	    A──4──B
//	          │
//	          2
//	          │
//	          C
//
// produced by the input stream:
//
//	A
//	B
//	C
//	START
//	A B 4
//	B C 2
//	UPDATE
//
// See topo for the loader, and cmd/netlab for the command-line front end.
//
//	go get github.com/katalvlaran/netlab
package netlab
