package topo

import (
	"bufio"
	"fmt"
	"io"
)

// Encode writes t back out in canonical wire form: the raw node section as
// declared, START, every edge exactly once sorted by endpoints, UPDATE.
//
// Load(Encode(t)) reproduces t's graph exactly; the edge section ordering is
// canonical rather than the original input order.
// Complexity: O(V + E log E).
func Encode(w io.Writer, t *Topology) error {
	if t == nil || t.Graph == nil {
		return fmt.Errorf("topo: nothing to encode")
	}
	bw := bufio.NewWriter(w)
	for _, n := range t.Nodes {
		if _, err := fmt.Fprintln(bw, n); err != nil {
			return fmt.Errorf("topo: encode node section: %w", err)
		}
	}
	if _, err := fmt.Fprintln(bw, SentinelStart); err != nil {
		return fmt.Errorf("topo: encode sentinel: %w", err)
	}
	for _, e := range t.Graph.Edges() {
		if _, err := fmt.Fprintf(bw, "%s %s %d\n", e.U, e.V, e.Weight); err != nil {
			return fmt.Errorf("topo: encode edge section: %w", err)
		}
	}
	if _, err := fmt.Fprintln(bw, SentinelUpdate); err != nil {
		return fmt.Errorf("topo: encode sentinel: %w", err)
	}

	return bw.Flush()
}
