// Package spath defines options and error values for Dijkstra's
// shortest-path algorithm over a core.Graph.
//
// Dijkstra computes minimum-cost routes from a single source node to every
// reachable node, provided all link costs are non-negative. It maintains a
// min-heap of frontier nodes with a lazy decrease-key strategy: duplicates
// are pushed and stale entries skipped on extraction.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E)
package spath

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for nodes the source cannot reach.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("spath: graph is nil")

	// ErrEmptySource indicates that the source node ID is empty.
	ErrEmptySource = errors.New("spath: source node ID is empty")

	// ErrSourceNotFound indicates that the source node does not exist.
	ErrSourceNotFound = errors.New("spath: source node not found")

	// ErrNegativeWeight indicates a negative link cost; Dijkstra's invariants
	// do not hold on such graphs.
	ErrNegativeWeight = errors.New("spath: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative MaxDistance option value.
	ErrBadMaxDistance = errors.New("spath: MaxDistance must be non-negative")

	// ErrNoPath is returned by PathTo for an unreachable destination.
	ErrNoPath = errors.New("spath: destination unreachable")
)

// Option configures a Dijkstra run via functional arguments.
type Option func(*Options)

// Options configures the behavior of one Dijkstra execution.
type Options struct {
	// ReturnPath requests the predecessor map for path reconstruction.
	ReturnPath bool

	// MaxDistance caps exploration: nodes farther than this are not settled.
	// Defaults to Unreachable (no cap).
	MaxDistance int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no distance cap and no predecessor map.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: Unreachable,
	}
}

// WithReturnPath requests the predecessor map alongside distances.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance skips nodes whose distance exceeds max.
// Negative values are invalid and surface as ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
	}
}

// PathTo reconstructs the source→dest route from a predecessor map produced
// by Dijkstra(..., WithReturnPath()). Returns ErrNoPath if dest was never
// reached.
func PathTo(prev map[string]string, source, dest string) ([]string, error) {
	if dest != source {
		if _, ok := prev[dest]; !ok {
			return nil, ErrNoPath
		}
	}
	path := []string{dest}
	for cur := dest; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
