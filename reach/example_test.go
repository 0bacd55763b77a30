package reach_test

import (
	"fmt"

	"github.com/katalvlaran/netlab/core"
	"github.com/katalvlaran/netlab/reach"
)

// ExampleBFS walks a small hub-and-spoke network and prints the visit order
// with hop counts. Neighbors are explored in sorted order, so the sequence
// is deterministic.
func ExampleBFS() {
	g := core.NewGraph()
	g.AddEdge("HUB", "A", 1)
	g.AddEdge("HUB", "B", 1)
	g.AddEdge("B", "C", 1)

	res, err := reach.BFS(g, "HUB")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, id := range res.Order {
		fmt.Printf("%s hops=%d\n", id, res.Hops[id])
	}
	// Output:
	// HUB hops=0
	// A hops=1
	// B hops=1
	// C hops=2
}

// ExampleReachable checks connectivity before and after a partition appears.
func ExampleReachable() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 4)
	g.AddEdge("B", "C", 2)

	ok, visited, _ := reach.Reachable(g, "A")
	fmt.Println(ok, visited)

	g.AddNode("ISLAND")
	ok, visited, _ = reach.Reachable(g, "A")
	fmt.Println(ok, visited)
	// Output:
	// true 3
	// false 3
}
