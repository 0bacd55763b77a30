// Package srp: protocol configuration, sentinel errors, and counters.
package srp

import (
	"errors"
	"time"
)

// Defaults mirror the classic selective-repeat exercise parameters.
const (
	// DefaultWindowSize is the maximum number of unacknowledged packets.
	DefaultWindowSize = 6

	// DefaultSeqSpace is the sequence-number modulus; selective repeat needs
	// at least WindowSize+1.
	DefaultSeqSpace = 7

	// DefaultTimeout is the retransmit timer duration (one round trip).
	DefaultTimeout = 16 * time.Second
)

// Sentinel errors for endpoint construction.
var (
	// ErrBadWindowSize indicates a non-positive window size.
	ErrBadWindowSize = errors.New("srp: window size must be positive")

	// ErrSeqSpaceTooSmall indicates SeqSpace < WindowSize+1; selective repeat
	// cannot distinguish old from new packets in a smaller space.
	ErrSeqSpaceTooSmall = errors.New("srp: sequence space must be at least window size + 1")

	// ErrBadTimeout indicates a non-positive retransmit timeout.
	ErrBadTimeout = errors.New("srp: timeout must be positive")
)

// Config holds the protocol parameters shared by both endpoints.
type Config struct {
	// WindowSize bounds the number of in-flight unacknowledged packets.
	WindowSize int

	// SeqSpace is the sequence-number modulus (>= WindowSize+1).
	SeqSpace int

	// Timeout is the retransmit timer for the oldest unacknowledged packet.
	Timeout time.Duration
}

// DefaultConfig returns the classic parameters: window 6, space 7, one-RTT
// timeout.
func DefaultConfig() Config {
	return Config{
		WindowSize: DefaultWindowSize,
		SeqSpace:   DefaultSeqSpace,
		Timeout:    DefaultTimeout,
	}
}

// validate checks the invariants between the parameters.
func (c Config) validate() error {
	if c.WindowSize <= 0 {
		return ErrBadWindowSize
	}
	if c.SeqSpace < c.WindowSize+1 {
		return ErrSeqSpaceTooSmall
	}
	if c.Timeout <= 0 {
		return ErrBadTimeout
	}
	return nil
}

// inWindow reports whether seq lies in [base, base+WindowSize) mod SeqSpace.
func (c Config) inWindow(base, seq int) bool {
	dist := (seq - base + c.SeqSpace) % c.SeqSpace
	return dist < c.WindowSize
}

// SenderStats counts sender-side protocol events.
type SenderStats struct {
	// MessagesAccepted is the number of application messages sent as packets.
	MessagesAccepted int

	// WindowFullDrops counts messages dropped against a full window.
	WindowFullDrops int

	// PacketsSent counts first transmissions (excluding retransmits).
	PacketsSent int

	// PacketsResent counts timeout-driven retransmissions.
	PacketsResent int

	// AcksReceived counts valid new ACKs.
	AcksReceived int

	// AcksIgnored counts duplicate, out-of-window, or corrupt ACKs.
	AcksIgnored int
}

// ReceiverStats counts receiver-side protocol events.
type ReceiverStats struct {
	// PacketsDelivered counts payloads handed to the application in order.
	PacketsDelivered int

	// PacketsBuffered counts valid in-window arrivals (including those
	// delivered immediately).
	PacketsBuffered int

	// ReAcks counts duplicate acknowledgments sent for corrupt or
	// out-of-window packets.
	ReAcks int
}
