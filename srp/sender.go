package srp

import (
	"time"

	"github.com/katalvlaran/netlab/sim"
)

// timerFired is the self-scheduled retransmit timer event. The epoch tags
// the timer generation: restarting or stopping the timer bumps the epoch, so
// a stale event arriving later is recognized and ignored. This stands in for
// an explicit stop-timer primitive, which a pure event queue cannot offer.
type timerFired struct {
	epoch int
}

// Sender is the transmitting selective-repeat endpoint. It accepts Message
// events from the application, Packet events (ACKs) from the reverse
// channel, and its own timerFired events.
//
// Sender is a sim.Process and must only be driven by a single Simulator; it
// needs no internal locking.
type Sender struct {
	cfg  Config
	peer sim.Process // forward path toward the receiver

	buffer []Packet // in-flight packets indexed by sequence number
	acked  []bool   // per-slot acknowledgment flags
	base   int      // oldest unacknowledged sequence number
	next   int      // next fresh sequence number

	epoch   int  // current timer generation
	running bool // timer currently armed

	stats SenderStats
}

// NewSender validates cfg and returns a ready endpoint. Attach the forward
// channel (or the receiver directly) with SetPeer before scheduling events.
func NewSender(cfg Config) (*Sender, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Sender{
		cfg:    cfg,
		buffer: make([]Packet, cfg.SeqSpace),
		acked:  make([]bool, cfg.SeqSpace),
	}, nil
}

// SetPeer points the sender's transmissions at p.
func (s *Sender) SetPeer(p sim.Process) { s.peer = p }

// Stats returns a copy of the sender's counters.
func (s *Sender) Stats() SenderStats { return s.stats }

// Outstanding returns the number of unacknowledged in-flight packets.
func (s *Sender) Outstanding() int {
	return (s.next - s.base + s.cfg.SeqSpace) % s.cfg.SeqSpace
}

// Handle dispatches on the event type: application messages, ACK packets,
// and timer expirations. Unknown payloads are ignored.
func (s *Sender) Handle(payload any, _ sim.Process, _ time.Duration) []sim.Output {
	switch ev := payload.(type) {
	case Message:
		return s.onMessage(ev)
	case Packet:
		return s.onAck(ev)
	case timerFired:
		return s.onTimeout(ev)
	default:
		return nil
	}
}

// onMessage transmits a fresh packet if the window has room, else drops the
// message and counts it.
func (s *Sender) onMessage(msg Message) []sim.Output {
	if !s.cfg.inWindow(s.base, s.next) {
		s.stats.WindowFullDrops++
		return nil
	}

	p := Packet{Seq: s.next, Ack: NotInUse, Payload: msg.Data}
	p.seal()
	s.buffer[s.next] = p
	s.acked[s.next] = false
	s.stats.MessagesAccepted++
	s.stats.PacketsSent++

	out := []sim.Output{{Payload: p, To: s.peer}}
	if s.base == s.next {
		out = append(out, s.startTimer())
	}
	s.next = (s.next + 1) % s.cfg.SeqSpace

	return out
}

// onAck marks the acknowledged slot, slides the window over every
// consecutively acknowledged packet, and re-arms the timer while packets
// remain outstanding.
func (s *Sender) onAck(p Packet) []sim.Output {
	if p.Corrupted() {
		s.stats.AcksIgnored++
		return nil
	}
	// Valid ACKs name an in-flight packet: [base, next) mod SeqSpace. An old
	// sequence that aliases into the advanced window must not count.
	ack := p.Ack
	if ack < 0 || ack >= s.cfg.SeqSpace {
		s.stats.AcksIgnored++
		return nil
	}
	if dist := (ack - s.base + s.cfg.SeqSpace) % s.cfg.SeqSpace; dist >= s.Outstanding() {
		s.stats.AcksIgnored++
		return nil
	}
	if s.acked[ack] {
		s.stats.AcksIgnored++
		return nil
	}

	s.stats.AcksReceived++
	s.acked[ack] = true
	for s.acked[s.base] {
		s.acked[s.base] = false
		s.base = (s.base + 1) % s.cfg.SeqSpace
	}

	s.stopTimer()
	if s.base != s.next {
		return []sim.Output{s.startTimer()}
	}

	return nil
}

// onTimeout retransmits the oldest unacknowledged packet and restarts the
// timer. Stale epochs are leftovers of a stopped timer and do nothing.
func (s *Sender) onTimeout(t timerFired) []sim.Output {
	if !s.running || t.epoch != s.epoch {
		return nil
	}
	s.stats.PacketsResent++

	return []sim.Output{
		{Payload: s.buffer[s.base], To: s.peer},
		s.startTimer(),
	}
}

// startTimer opens a new timer generation and emits its expiry event.
func (s *Sender) startTimer() sim.Output {
	s.epoch++
	s.running = true
	return sim.Output{Payload: timerFired{epoch: s.epoch}, Delay: s.cfg.Timeout}
}

// stopTimer invalidates any in-flight expiry event.
func (s *Sender) stopTimer() {
	s.epoch++
	s.running = false
}
