package topo

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/netlab/core"
)

// parseState tracks the loader's position in the two-section stream.
type parseState int

const (
	readingNodes parseState = iota // before START
	readingEdges                   // between START and UPDATE
	done                           // UPDATE consumed
)

// Topology is the result of a successful Load: the populated graph plus the
// raw node section.
type Topology struct {
	// Graph holds the symmetric adjacency built from the edge section.
	Graph *core.Graph

	// Nodes lists node names exactly as the node section declared them, in
	// order and including duplicates. Graph.Nodes() is the deduplicated view.
	Nodes []string
}

// loader bundles the mutable state of one Load call.
type loader struct {
	opts     Options
	scanner  *bufio.Scanner
	state    parseState
	lineNo   int
	declared map[string]struct{}
	res      *Topology
}

// Load reads a two-section topology stream from r and materializes it as an
// undirected weighted graph. It consumes the UPDATE sentinel line and then
// stops; nothing after it is interpreted (the scanner may have buffered
// ahead on r).
//
// Returns ErrNilReader for a nil reader; ErrEmptyNode, ErrMalformedEdge, or
// ErrUnknownNode (strict mode only) for bad content, each wrapped with the
// offending line number; ErrUnexpectedEOF if the stream ends before a
// sentinel; or the context's error on cancellation.
// Complexity: O(L) over input lines, O(V+E) space for the result.
func Load(r io.Reader, opts ...Option) (*Topology, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ld := &loader{
		opts:     o,
		scanner:  bufio.NewScanner(r),
		state:    readingNodes,
		declared: make(map[string]struct{}),
		res: &Topology{
			Graph: core.NewGraph(),
			Nodes: make([]string, 0),
		},
	}

	return ld.res, ld.run()
}

// run drives the state machine until UPDATE, stream end, or error.
func (ld *loader) run() error {
	for ld.state != done && ld.scanner.Scan() {
		// cancellation check (once per line)
		select {
		case <-ld.opts.Ctx.Done():
			return ld.opts.Ctx.Err()
		default:
		}

		ld.lineNo++
		line := strings.TrimSpace(ld.scanner.Text())

		var err error
		switch ld.state {
		case readingNodes:
			err = ld.nodeLine(line)
		case readingEdges:
			err = ld.edgeLine(line)
		}
		if err != nil {
			return err
		}
	}
	if err := ld.scanner.Err(); err != nil {
		return fmt.Errorf("topo: reading input: %w", err)
	}
	if ld.state != done {
		return fmt.Errorf("%w: %q not reached", ErrUnexpectedEOF, ld.missingSentinel())
	}

	return nil
}

// nodeLine handles one line of the node section.
func (ld *loader) nodeLine(line string) error {
	if line == SentinelStart {
		ld.state = readingEdges
		return nil
	}
	if line == "" {
		return fmt.Errorf("%w: line %d", ErrEmptyNode, ld.lineNo)
	}
	// Duplicates stay in the raw node list; the graph entry is idempotent.
	ld.res.Nodes = append(ld.res.Nodes, line)
	ld.declared[line] = struct{}{}
	if err := ld.res.Graph.AddNode(line); err != nil {
		return fmt.Errorf("topo: line %d: %w", ld.lineNo, err)
	}

	return nil
}

// edgeLine handles one line of the edge section: <a> <b> <weight>.
func (ld *loader) edgeLine(line string) error {
	if line == SentinelUpdate {
		ld.state = done
		return nil
	}
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return fmt.Errorf("%w: line %d: %q: want 3 fields, got %d",
			ErrMalformedEdge, ld.lineNo, line, len(fields))
	}
	weight, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: line %d: weight %q is not an integer",
			ErrMalformedEdge, ld.lineNo, fields[2])
	}
	if ld.opts.StrictNodes {
		for _, endpoint := range fields[:2] {
			if _, ok := ld.declared[endpoint]; !ok {
				return fmt.Errorf("%w: line %d: %q", ErrUnknownNode, ld.lineNo, endpoint)
			}
		}
	}
	if err = ld.res.Graph.AddEdge(fields[0], fields[1], weight); err != nil {
		return fmt.Errorf("topo: line %d: %w", ld.lineNo, err)
	}

	return nil
}

// missingSentinel names the sentinel the parser was still waiting for.
func (ld *loader) missingSentinel() string {
	if ld.state == readingNodes {
		return SentinelStart
	}
	return SentinelUpdate
}
