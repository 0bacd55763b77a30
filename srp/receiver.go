package srp

import (
	"time"

	"github.com/katalvlaran/netlab/sim"
)

// ReceiverOption customizes a Receiver at construction time.
type ReceiverOption func(*Receiver)

// WithDeliver replaces the default in-memory sink for in-order payloads.
func WithDeliver(fn func(data [PayloadSize]byte)) ReceiverOption {
	return func(r *Receiver) {
		if fn != nil {
			r.deliver = fn
		}
	}
}

// Receiver is the accepting selective-repeat endpoint. It buffers in-window
// packets out of order, ACKs every valid arrival, and releases payloads
// upward the moment they become consecutive.
//
// Receiver is a sim.Process and must only be driven by a single Simulator.
type Receiver struct {
	cfg  Config
	peer sim.Process // reverse path toward the sender

	buffer []Packet // out-of-order packets indexed by sequence number
	recvd  []bool   // per-slot arrival flags
	base   int      // next in-order sequence number

	deliver   func(data [PayloadSize]byte)
	delivered []Message // default sink when no WithDeliver is given

	stats ReceiverStats
}

// NewReceiver validates cfg and returns a ready endpoint. Attach the reverse
// channel (or the sender directly) with SetPeer before scheduling events.
func NewReceiver(cfg Config, opts ...ReceiverOption) (*Receiver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	r := &Receiver{
		cfg:    cfg,
		buffer: make([]Packet, cfg.SeqSpace),
		recvd:  make([]bool, cfg.SeqSpace),
	}
	r.deliver = func(data [PayloadSize]byte) {
		r.delivered = append(r.delivered, Message{Data: data})
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// SetPeer points the receiver's acknowledgments at p.
func (r *Receiver) SetPeer(p sim.Process) { r.peer = p }

// Stats returns a copy of the receiver's counters.
func (r *Receiver) Stats() ReceiverStats { return r.stats }

// Delivered returns the in-order payloads captured by the default sink.
// Always empty when WithDeliver replaced the sink.
func (r *Receiver) Delivered() []Message {
	out := make([]Message, len(r.delivered))
	copy(out, r.delivered)
	return out
}

// Handle accepts data packets; anything else is ignored.
func (r *Receiver) Handle(payload any, _ sim.Process, _ time.Duration) []sim.Output {
	p, ok := payload.(Packet)
	if !ok {
		return nil
	}

	ack := Packet{Seq: NotInUse}
	switch {
	case p.Corrupted():
		// Cannot trust the header; re-ACK the newest in-order sequence.
		ack.Ack = r.lastInOrder()
		r.stats.ReAcks++
	case r.cfg.inWindow(r.base, p.Seq) && !r.recvd[p.Seq]:
		r.buffer[p.Seq] = p
		r.recvd[p.Seq] = true
		r.stats.PacketsBuffered++
		ack.Ack = p.Seq
		r.release()
	default:
		// Duplicate or out-of-window; the sender needs the duplicate ACK to
		// make progress after a lost acknowledgment.
		ack.Ack = r.lastInOrder()
		r.stats.ReAcks++
	}
	ack.seal()

	return []sim.Output{{Payload: ack, To: r.peer}}
}

// release hands every consecutive buffered payload to the application and
// advances the window base.
func (r *Receiver) release() {
	for r.recvd[r.base] {
		r.deliver(r.buffer[r.base].Payload)
		r.stats.PacketsDelivered++
		r.recvd[r.base] = false
		r.base = (r.base + 1) % r.cfg.SeqSpace
	}
}

// lastInOrder is the sequence number directly below the window base.
func (r *Receiver) lastInOrder() int {
	return (r.base + r.cfg.SeqSpace - 1) % r.cfg.SeqSpace
}
