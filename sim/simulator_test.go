package sim_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/netlab/sim"
)

// recorder collects every delivery it receives.
type recorder struct {
	got []string
	at  []time.Duration
}

func (r *recorder) Handle(payload any, _ sim.Process, at time.Duration) []sim.Output {
	r.got = append(r.got, payload.(string))
	r.at = append(r.at, at)
	return nil
}

// echoer responds to every delivery with one reply after a fixed delay.
type echoer struct {
	to    sim.Process
	delay time.Duration
	left  int
}

func (e *echoer) Handle(payload any, _ sim.Process, _ time.Duration) []sim.Output {
	if e.left == 0 {
		return nil
	}
	e.left--
	return []sim.Output{{Payload: payload, To: e.to, Delay: e.delay}}
}

// TestSchedule_OrderAndClock delivers out-of-order scheduled events by
// arrival time and advances the clock accordingly.
func TestSchedule_OrderAndClock(t *testing.T) {
	var s sim.Simulator
	r := &recorder{}
	s.Schedule(sim.Output{Payload: "late", To: r, Delay: 30 * time.Millisecond}, nil)
	s.Schedule(sim.Output{Payload: "early", To: r, Delay: 10 * time.Millisecond}, nil)
	s.Schedule(sim.Output{Payload: "mid", To: r, Delay: 20 * time.Millisecond}, nil)
	s.Run()

	want := []string{"early", "mid", "late"}
	for i, p := range want {
		if r.got[i] != p {
			t.Fatalf("delivery %d = %q; want %q (full order %v)", i, r.got[i], p, r.got)
		}
	}
	if s.Time() != 30*time.Millisecond {
		t.Errorf("Time() = %v; want 30ms", s.Time())
	}
	if !s.Drained() || s.Delivered() != 3 {
		t.Errorf("Drained=%v Delivered=%d; want true 3", s.Drained(), s.Delivered())
	}
}

// TestSchedule_FIFOTieBreak preserves scheduling order for simultaneous events.
func TestSchedule_FIFOTieBreak(t *testing.T) {
	var s sim.Simulator
	r := &recorder{}
	for _, p := range []string{"a", "b", "c", "d"} {
		s.Schedule(sim.Output{Payload: p, To: r, Delay: 5 * time.Millisecond}, nil)
	}
	s.Run()
	for i, p := range []string{"a", "b", "c", "d"} {
		if r.got[i] != p {
			t.Fatalf("tie-break order %v; want [a b c d]", r.got)
		}
	}
}

// TestSchedule_NilToSelf routes nil-destination outputs back to the sender.
func TestSchedule_NilToSelf(t *testing.T) {
	var s sim.Simulator
	e := &echoer{to: nil, delay: time.Millisecond, left: 3}
	s.Schedule(sim.Output{Payload: "tick", To: e, Delay: 0}, nil)
	s.Run()
	if e.left != 0 {
		t.Errorf("echoer.left = %d; want 0 (self-delivery loop ran)", e.left)
	}
	if s.Delivered() != 4 {
		t.Errorf("Delivered = %d; want 4", s.Delivered())
	}
}

// TestRunUntil stops the clock at the bound and leaves later events queued.
func TestRunUntil(t *testing.T) {
	var s sim.Simulator
	r := &recorder{}
	s.Schedule(sim.Output{Payload: "in", To: r, Delay: 10 * time.Millisecond}, nil)
	s.Schedule(sim.Output{Payload: "out", To: r, Delay: 50 * time.Millisecond}, nil)
	s.RunUntil(20 * time.Millisecond)

	if len(r.got) != 1 || r.got[0] != "in" {
		t.Fatalf("deliveries = %v; want [in]", r.got)
	}
	if s.Queued() != 1 {
		t.Errorf("Queued = %d; want 1", s.Queued())
	}
	s.Run()
	if len(r.got) != 2 {
		t.Errorf("final deliveries = %v; want 2 entries", r.got)
	}
}

// TestSchedule_NegativeDelayPanics guards the forward-only clock.
func TestSchedule_NegativeDelayPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("negative delay did not panic")
		}
	}()
	var s sim.Simulator
	s.Schedule(sim.Output{Payload: "x", To: &recorder{}, Delay: -time.Millisecond}, nil)
}

// TestPingPong runs two echoers against each other and checks the clock sums
// both directions' latency.
func TestPingPong(t *testing.T) {
	var s sim.Simulator
	a := &echoer{delay: 3 * time.Millisecond, left: 2}
	b := &echoer{to: a, delay: 3 * time.Millisecond, left: 2}
	a.to = b
	s.Schedule(sim.Output{Payload: "ball", To: a, Delay: 0}, nil)
	s.Run()
	// serve + 4 returns, 3ms per hop after the serve
	if s.Time() != 12*time.Millisecond {
		t.Errorf("Time() = %v; want 12ms", s.Time())
	}
}
