package reach_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/netlab/core"
	"github.com/katalvlaran/netlab/reach"
)

// line builds the path graph A-B-C-D with unit weights.
func line() *core.Graph {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 1)
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := reach.BFS(nil, "A"); !errors.Is(err, reach.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := reach.BFS(g, "missing"); !errors.Is(err, reach.ErrSourceNotFound) {
		t.Errorf("missing source: want ErrSourceNotFound, got %v", err)
	}
	_ = g.AddNode("A")
	if _, err := reach.BFS(g, "A", reach.WithMaxHops(-1)); !errors.Is(err, reach.ErrOptionViolation) {
		t.Errorf("negative hops: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_PathGraph checks visit order, hop counts, and path reconstruction.
func TestBFS_PathGraph(t *testing.T) {
	res, err := reach.BFS(line(), "A")
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Hops["D"] != 3 {
		t.Errorf("Hops[D] = %d; want 3", res.Hops["D"])
	}
	path, err := res.PathTo("D")
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(D) = %v; want %v", path, want)
	}
}

// TestBFS_MaxHops limits the frontier.
func TestBFS_MaxHops(t *testing.T) {
	res, err := reach.BFS(line(), "A", reach.WithMaxHops(2))
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if _, ok := res.Hops["D"]; ok {
		t.Error("D visited despite MaxHops(2)")
	}
	if res.Hops["C"] != 2 {
		t.Errorf("Hops[C] = %d; want 2", res.Hops["C"])
	}
}

// TestBFS_OnVisitAbort propagates a hook error.
func TestBFS_OnVisitAbort(t *testing.T) {
	boom := errors.New("boom")
	_, err := reach.BFS(line(), "A", reach.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("want hook error, got %v", err)
	}
}

// TestBFS_Cancellation stops promptly on a cancelled context.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := reach.BFS(line(), "A", reach.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestReachable distinguishes connected from partitioned topologies.
func TestReachable(t *testing.T) {
	g := line()
	ok, visited, err := reach.Reachable(g, "A")
	if err != nil || !ok || visited != 4 {
		t.Errorf("connected: got ok=%v visited=%d err=%v; want true 4 nil", ok, visited, err)
	}

	_ = g.AddNode("LONER")
	ok, visited, err = reach.Reachable(g, "A")
	if err != nil || ok || visited != 4 {
		t.Errorf("partitioned: got ok=%v visited=%d err=%v; want false 4 nil", ok, visited, err)
	}

	// Weights play no role in reachability.
	_ = g.AddEdge("D", "LONER", -100)
	ok, _, _ = reach.Reachable(g, "A")
	if !ok {
		t.Error("negative-weight link should still connect")
	}
}

// TestBFS_PathTo_Unreached errors for nodes outside the component.
func TestBFS_PathTo_Unreached(t *testing.T) {
	g := line()
	_ = g.AddNode("LONER")
	res, err := reach.BFS(g, "A")
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if _, err = res.PathTo("LONER"); err == nil {
		t.Error("PathTo(LONER) succeeded; want error")
	}
}
