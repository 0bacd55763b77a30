package srp

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/netlab/sim"
)

// ErrNoMessages indicates a session configured with nothing to send.
var ErrNoMessages = errors.New("srp: session needs at least one message")

// SessionConfig describes one complete simulated transfer.
type SessionConfig struct {
	// Protocol holds the window, sequence space, and timeout parameters.
	Protocol Config

	// Messages is the number of application messages offered to the sender.
	Messages int

	// Interval is the virtual time between consecutive offers.
	Interval time.Duration

	// Seed feeds both channels' random sources (reverse uses Seed+1).
	Seed int64

	// Loss and Corruption are per-packet probabilities on both channels.
	Loss       float64
	Corruption float64

	// Delay and Jitter shape per-packet propagation time on both channels.
	Delay  time.Duration
	Jitter time.Duration

	// MaxTime bounds the virtual run; zero means 10000 timeouts, enough for
	// any sane loss rate while keeping a loss-1.0 run finite.
	MaxTime time.Duration
}

// SessionResult aggregates every counter of one finished run.
type SessionResult struct {
	Sender   SenderStats
	Receiver ReceiverStats
	Forward  ChannelStats
	Reverse  ChannelStats

	// Delivered is the number of payloads the application received in order.
	Delivered int

	// Elapsed is the virtual time consumed.
	Elapsed time.Duration

	// Complete is true when every accepted message was acknowledged and
	// delivered at least once before the horizon. With a window larger than
	// half the sequence space a retransmit can alias into the receiver's
	// advanced window, so Delivered may exceed MessagesAccepted.
	Complete bool
}

// RunSession wires sender → forward channel → receiver → reverse channel →
// sender, offers the configured messages, and drives the simulation to
// completion or to the virtual-time horizon.
func RunSession(cfg SessionConfig) (*SessionResult, error) {
	if cfg.Messages <= 0 {
		return nil, ErrNoMessages
	}
	sender, err := NewSender(cfg.Protocol)
	if err != nil {
		return nil, err
	}
	receiver, err := NewReceiver(cfg.Protocol)
	if err != nil {
		return nil, err
	}

	chanOpts := []ChannelOption{
		WithLoss(cfg.Loss),
		WithCorruption(cfg.Corruption),
		WithDelay(cfg.Delay, cfg.Jitter),
	}
	forward := NewChannel(receiver, cfg.Seed, chanOpts...)
	reverse := NewChannel(sender, cfg.Seed+1, chanOpts...)
	sender.SetPeer(forward)
	receiver.SetPeer(reverse)

	var s sim.Simulator
	for i := 0; i < cfg.Messages; i++ {
		var msg Message
		copy(msg.Data[:], fmt.Sprintf("msg %04d", i))
		s.Schedule(sim.Output{
			Payload: msg,
			To:      sender,
			Delay:   time.Duration(i) * cfg.Interval,
		}, nil)
	}

	horizon := cfg.MaxTime
	if horizon == 0 {
		horizon = time.Duration(cfg.Messages)*cfg.Interval + 10000*cfg.Protocol.Timeout
	}
	s.RunUntil(horizon)

	res := &SessionResult{
		Sender:    sender.Stats(),
		Receiver:  receiver.Stats(),
		Forward:   forward.Stats(),
		Reverse:   reverse.Stats(),
		Delivered: receiver.Stats().PacketsDelivered,
		Elapsed:   s.Time(),
	}
	res.Complete = res.Delivered >= res.Sender.MessagesAccepted && sender.Outstanding() == 0

	return res, nil
}
