// Package spath implements Dijkstra's algorithm; see types.go for options
// and error values.
package spath

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/netlab/core"
)

// Dijkstra computes shortest distances from source to every node of the
// weighted graph g.
//
// Returns:
//
//   - dist: map from node ID to minimum distance (Unreachable if no route).
//   - prev: predecessor map when WithReturnPath() is set (nil otherwise);
//     prev[v] == u means the best route to v arrives via u. The source and
//     unreachable nodes have no entry.
//   - err:  validation failure, in order: ErrEmptySource, ErrNilGraph,
//     ErrBadMaxDistance, ErrSourceNotFound, ErrNegativeWeight.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, source string, opts ...Option) (map[string]int64, map[string]string, error) {
	if source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if !g.HasNode(source) {
		return nil, nil, ErrSourceNotFound
	}

	// Fail fast on negative costs before touching the heap.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s-%s weight=%d", ErrNegativeWeight, e.U, e.V, e.Weight)
		}
	}

	r := newRunner(g, source, cfg)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state of a single execution.
type runner struct {
	g       *core.Graph
	cfg     Options
	dist    map[string]int64
	prev    map[string]string
	settled map[string]bool
	pq      frontier
}

// newRunner initializes distances to Unreachable and seeds the heap with the
// source at distance zero.
func newRunner(g *core.Graph, source string, cfg Options) *runner {
	nodes := g.Nodes()
	r := &runner{
		g:       g,
		cfg:     cfg,
		dist:    make(map[string]int64, len(nodes)),
		settled: make(map[string]bool, len(nodes)),
		pq:      make(frontier, 0, len(nodes)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(nodes))
	}
	for _, id := range nodes {
		r.dist[id] = Unreachable
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &frontierItem{id: source, dist: 0})

	return r
}

// process extracts the closest frontier node and relaxes its links until the
// heap drains or everything within MaxDistance is settled.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*frontierItem)
		if r.settled[item.id] {
			continue // stale duplicate from lazy decrease-key
		}
		if item.dist > r.cfg.MaxDistance {
			return // every remaining entry is at least this far
		}
		r.settled[item.id] = true
		r.relax(item.id, item.dist)
	}
}

// relax updates the tentative distance of each neighbor of id.
func (r *runner) relax(id string, d int64) {
	nbrs, err := r.g.Neighbors(id)
	if err != nil {
		return // node vanished mid-run; nothing to relax
	}
	for _, nbr := range nbrs {
		if r.settled[nbr] {
			continue
		}
		w, werr := r.g.Weight(id, nbr)
		if werr != nil {
			continue
		}
		cand := d + w
		if cand < r.dist[nbr] {
			r.dist[nbr] = cand
			if r.prev != nil {
				r.prev[nbr] = id
			}
			heap.Push(&r.pq, &frontierItem{id: nbr, dist: cand})
		}
	}
}

// frontierItem is one (node, tentative distance) heap entry.
type frontierItem struct {
	id   string
	dist int64
}

// frontier is a min-heap of frontierItem ordered by distance, with ID as a
// tie-break for deterministic extraction order.
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	return f[i].id < f[j].id
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}
