// Package reach provides tunable options and error definitions for
// breadth-first traversal over a core.Graph.
package reach

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("reach: graph is nil")

	// ErrSourceNotFound is returned when the source ID is absent.
	ErrSourceNotFound = errors.New("reach: source node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")
)

// Option configures traversal behavior via functional arguments.
// An invalid Option (e.g. negative hop limit) is recorded internally and
// surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize one traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. A returned error aborts the
	// traversal and propagates to the caller.
	OnVisit func(id string, hops int) error

	// MaxHops, if > 0, stops exploring beyond this hop count.
	// Zero explicitly disables the limit.
	MaxHops int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no hop limit, and
// a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
		MaxHops: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on each visit; returning an error
// from the callback stops the traversal.
func WithOnVisit(fn func(id string, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxHops stops the search past the given hop count.
//
//	h > 0: limit to h hops
//	h == 0: explicit no limit
//	h < 0: invalid option → ErrOptionViolation
func WithMaxHops(h int) Option {
	return func(o *Options) {
		if h < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, h)
			return
		}
		o.MaxHops = h
	}
}

// Result holds the outcome of a traversal:
//   - Order: nodes visited, in visit sequence.
//   - Hops: map from node ID to its distance (in edges) from the source.
//   - Parent: map from node ID to its predecessor in the traversal tree.
type Result struct {
	Order  []string
	Hops   map[string]int
	Parent map[string]string
}

// PathTo reconstructs the source→dest path from the parent links.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Hops[dest]; !ok {
		return nil, fmt.Errorf("reach: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
