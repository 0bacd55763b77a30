package srp

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/netlab/sim"
)

// ChannelStats counts what happened to packets crossing one channel.
type ChannelStats struct {
	// Forwarded counts packets passed through (corrupted ones included).
	Forwarded int

	// Dropped counts packets lost in transit.
	Dropped int

	// Corrupted counts packets forwarded with a damaged checksum.
	Corrupted int
}

// ChannelOption customizes a Channel at construction time.
type ChannelOption func(*Channel)

// WithLoss sets the independent per-packet drop probability (clamped to [0,1]).
func WithLoss(p float64) ChannelOption {
	return func(c *Channel) { c.lossProb = clamp01(p) }
}

// WithCorruption sets the per-packet corruption probability (clamped to [0,1]).
func WithCorruption(p float64) ChannelOption {
	return func(c *Channel) { c.corruptProb = clamp01(p) }
}

// WithDelay sets the base propagation delay and a uniform jitter bound.
func WithDelay(base, jitter time.Duration) ChannelOption {
	return func(c *Channel) {
		if base >= 0 {
			c.delay = base
		}
		if jitter >= 0 {
			c.jitter = jitter
		}
	}
}

// Channel is a unidirectional lossy link. Every Packet scheduled to it is
// independently dropped, corrupted, or forwarded to the destination after
// the configured delay. Randomness comes from the seeded source passed at
// construction, keeping runs reproducible.
type Channel struct {
	dst sim.Process

	delay       time.Duration
	jitter      time.Duration
	lossProb    float64
	corruptProb float64
	rng         *rand.Rand

	stats ChannelStats
}

// NewChannel builds a link toward dst with the given seed and options.
// The default channel is perfect: no loss, no corruption, zero delay.
func NewChannel(dst sim.Process, seed int64, opts ...ChannelOption) *Channel {
	c := &Channel{
		dst: dst,
		rng: rand.New(rand.NewSource(seed)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Stats returns a copy of the channel's counters.
func (c *Channel) Stats() ChannelStats { return c.stats }

// Handle forwards, damages, or drops one packet. Non-packet payloads pass
// through untouched so the channel stays transparent to control events.
func (c *Channel) Handle(payload any, _ sim.Process, _ time.Duration) []sim.Output {
	p, ok := payload.(Packet)
	if !ok {
		return []sim.Output{{Payload: payload, To: c.dst, Delay: c.transit()}}
	}
	if c.rng.Float64() < c.lossProb {
		c.stats.Dropped++
		return nil
	}
	if c.rng.Float64() < c.corruptProb {
		p.Checksum++ // any mismatch is corruption
		c.stats.Corrupted++
	}
	c.stats.Forwarded++

	return []sim.Output{{Payload: p, To: c.dst, Delay: c.transit()}}
}

// transit draws one propagation delay.
func (c *Channel) transit() time.Duration {
	if c.jitter <= 0 {
		return c.delay
	}
	return c.delay + time.Duration(c.rng.Int63n(int64(c.jitter)))
}

func clamp01(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
