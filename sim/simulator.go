package sim

import (
	"container/heap"
	"time"
)

// Process is one simulated participant. Handle receives a payload delivered
// at virtual time at, from the originating Process (the receiver itself for
// self-scheduled events such as timers), and returns follow-up events to
// schedule.
type Process interface {
	Handle(payload any, from Process, at time.Duration) []Output
}

// Output is one follow-up event requested by a Process.
type Output struct {
	// Payload is the opaque event content.
	Payload any

	// To is the destination Process; nil means deliver back to the sender.
	To Process

	// Delay is the virtual time between now and delivery; must be >= 0.
	Delay time.Duration
}

// Simulator owns the virtual clock and the pending event queue.
// The zero value is ready to use.
type Simulator struct {
	now time.Duration
	pq  eventQueue
	seq int
}

// Time returns the current virtual clock value.
func (s *Simulator) Time() time.Duration {
	return s.now
}

// Queued returns the number of events still pending.
func (s *Simulator) Queued() int {
	return len(s.pq)
}

// Delivered returns the number of events delivered so far.
func (s *Simulator) Delivered() int {
	return s.seq - len(s.pq)
}

// Drained reports whether the event queue is empty.
func (s *Simulator) Drained() bool {
	return len(s.pq) == 0
}

// Schedule enqueues one event on behalf of from. A nil Output.To routes the
// event back to from. Panics on a negative delay: virtual time only moves
// forward.
func (s *Simulator) Schedule(out Output, from Process) {
	if out.Delay < 0 {
		panic("sim: negative delay")
	}
	to := out.To
	if to == nil {
		to = from
	}
	heap.Push(&s.pq, event{
		arrival: s.now + out.Delay,
		seq:     s.seq,
		from:    from,
		to:      to,
		payload: out.Payload,
	})
	s.seq++
}

// Run delivers events until the queue drains.
func (s *Simulator) Run() {
	for !s.Drained() {
		s.step()
	}
}

// RunUntil delivers events while the clock is at or before t and the queue
// is non-empty.
func (s *Simulator) RunUntil(t time.Duration) {
	for !s.Drained() && s.pq[0].arrival <= t {
		s.step()
	}
}

// step pops the earliest event, advances the clock, delivers it, and
// schedules whatever the handler returns.
func (s *Simulator) step() {
	ev := heap.Pop(&s.pq).(event)
	if ev.arrival < s.now {
		panic("sim: time reversal")
	}
	s.now = ev.arrival
	for _, out := range ev.to.Handle(ev.payload, ev.from, s.now) {
		s.Schedule(out, ev.to)
	}
}

// event is a queued delivery.
type event struct {
	arrival time.Duration
	seq     int
	from    Process
	to      Process
	payload any
}

// eventQueue is a min-heap ordered by arrival time, FIFO within one instant.
type eventQueue []event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].arrival != q[j].arrival {
		return q[i].arrival < q[j].arrival
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) {
	*q = append(*q, x.(event))
}

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1].payload = nil
	*q = old[:n-1]
	return ev
}
