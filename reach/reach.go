// Package reach provides breadth-first reachability over a core.Graph,
// returning hop counts, parent links, and visit order.
//
// Hop counts ignore edge weights; use spath for weighted distances. Because
// core.Neighbors returns sorted IDs and BFS enqueues neighbors in that order,
// the visit sequence is fully reproducible.
package reach

import (
	"fmt"

	"github.com/katalvlaran/netlab/core"
)

// queueItem pairs a node ID with its hop count and its parent's ID.
type queueItem struct {
	id     string
	hops   int
	parent string // empty for the source
}

// walker encapsulates mutable traversal state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	seen  map[string]bool
	res   *Result
}

// BFS runs breadth-first search on g starting from source, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrSourceNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// Complexity: O(V + E) time, O(V) space.
func BFS(g *core.Graph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(source) {
		return nil, ErrSourceNotFound
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		seen:  make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Hops:   make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(source, 0, "")

	return w.res, w.loop()
}

// Reachable reports whether every node of g is reachable from source,
// together with the number of nodes visited. Handy for connectivity checks
// on freshly loaded topologies.
func Reachable(g *core.Graph, source string) (bool, int, error) {
	res, err := BFS(g, source)
	if err != nil {
		return false, 0, err
	}

	return len(res.Order) == g.NodeCount(), len(res.Order), nil
}

// enqueue marks id seen at the given hop count, records its parent, and
// appends it to the queue.
func (w *walker) enqueue(id string, hops int, parent string) {
	w.seen[id] = true
	w.res.Hops[id] = hops
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, hops: hops, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per node)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.hops); err != nil {
			return fmt.Errorf("reach: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues each unseen neighbor of item, honoring MaxHops.
func (w *walker) expand(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("reach: neighbors of %q: %w", item.id, err)
	}
	next := item.hops + 1
	if w.opts.MaxHops > 0 && next > w.opts.MaxHops {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.seen[nbr] {
			w.enqueue(nbr, next, item.id)
		}
	}

	return nil
}
