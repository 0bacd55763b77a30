package topo_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/netlab/topo"
)

// ExampleLoad parses the canonical two-section stream and prints the
// resulting adjacency of the middle node.
func ExampleLoad() {
	input := `A
B
C
START
A B 4
B C 2
UPDATE
`
	t, err := topo.Load(strings.NewReader(input))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(t.Nodes)
	for _, e := range t.Graph.Edges() {
		fmt.Printf("%s-%s %d\n", e.U, e.V, e.Weight)
	}
	// Output:
	// [A B C]
	// A-B 4
	// B-C 2
}

// ExampleLoad_strict shows the hardened policy for undeclared endpoints.
func ExampleLoad_strict() {
	input := "A\nSTART\nA GHOST 1\nUPDATE\n"
	_, err := topo.Load(strings.NewReader(input), topo.WithStrictNodes())
	fmt.Println(err)
	// Output:
	// topo: edge references undeclared node: line 3: "GHOST"
}
