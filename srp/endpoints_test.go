package srp_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netlab/sim"
	"github.com/katalvlaran/netlab/srp"
)

// cfg is a small window for hand-driven scenarios.
var cfg = srp.Config{WindowSize: 3, SeqSpace: 4, Timeout: 10 * time.Second}

// dataPacket builds a sealed data packet for direct Handle calls.
func dataPacket(seq int, text string) srp.Packet {
	p := srp.Packet{Seq: seq, Ack: srp.NotInUse}
	copy(p.Payload[:], text)
	p.Checksum = srp.Checksum(p)
	return p
}

// ackOf extracts the single ACK packet a receiver emitted.
func ackOf(t *testing.T, outs []sim.Output) srp.Packet {
	t.Helper()
	require.Len(t, outs, 1)
	p, ok := outs[0].Payload.(srp.Packet)
	require.True(t, ok, "output payload is %T, want Packet", outs[0].Payload)
	return p
}

// TestConfig_Validation covers the constructor guard rails.
func TestConfig_Validation(t *testing.T) {
	_, err := srp.NewSender(srp.Config{WindowSize: 0, SeqSpace: 7, Timeout: time.Second})
	assert.ErrorIs(t, err, srp.ErrBadWindowSize)

	_, err = srp.NewSender(srp.Config{WindowSize: 6, SeqSpace: 6, Timeout: time.Second})
	assert.ErrorIs(t, err, srp.ErrSeqSpaceTooSmall)

	_, err = srp.NewReceiver(srp.Config{WindowSize: 6, SeqSpace: 7, Timeout: 0})
	assert.ErrorIs(t, err, srp.ErrBadTimeout)

	_, err = srp.NewSender(srp.DefaultConfig())
	assert.NoError(t, err)
}

// TestSender_WindowFull drops messages beyond the window and counts them.
func TestSender_WindowFull(t *testing.T) {
	s, err := srp.NewSender(cfg)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		var msg srp.Message
		msg.Data[0] = byte('a' + i)
		s.Handle(msg, nil, 0)
	}

	st := s.Stats()
	assert.Equal(t, 3, st.MessagesAccepted, "window of 3 accepts 3")
	assert.Equal(t, 2, st.WindowFullDrops)
	assert.Equal(t, 3, s.Outstanding())
}

// TestSender_FirstPacketArmsTimer: only the base packet starts the timer.
func TestSender_FirstPacketArmsTimer(t *testing.T) {
	s, err := srp.NewSender(cfg)
	require.NoError(t, err)

	outs := s.Handle(srp.Message{}, nil, 0)
	require.Len(t, outs, 2, "base packet: transmission + timer")
	assert.Equal(t, cfg.Timeout, outs[1].Delay)
	assert.Nil(t, outs[1].To, "timer is a self event")

	outs = s.Handle(srp.Message{}, nil, 0)
	require.Len(t, outs, 1, "non-base packet: transmission only")
}

// TestSender_TimeoutResendsBase replays the timer event and expects exactly
// the base packet again.
func TestSender_TimeoutResendsBase(t *testing.T) {
	s, err := srp.NewSender(cfg)
	require.NoError(t, err)

	outs := s.Handle(srp.Message{}, nil, 0)
	first, ok := outs[0].Payload.(srp.Packet)
	require.True(t, ok)
	timer := outs[1].Payload

	outs = s.Handle(timer, nil, cfg.Timeout)
	require.Len(t, outs, 2, "resend + restarted timer")
	resent, ok := outs[0].Payload.(srp.Packet)
	require.True(t, ok)
	assert.Equal(t, first, resent)
	assert.Equal(t, 1, s.Stats().PacketsResent)

	// The replaced timer's stale event must now be inert.
	outs = s.Handle(timer, nil, 2*cfg.Timeout)
	assert.Empty(t, outs)
	assert.Equal(t, 1, s.Stats().PacketsResent)
}

// TestSender_AckSlidesWindow acknowledges out of order and watches the base
// jump over both slots at once.
func TestSender_AckSlidesWindow(t *testing.T) {
	s, err := srp.NewSender(cfg)
	require.NoError(t, err)
	s.Handle(srp.Message{}, nil, 0) // seq 0
	s.Handle(srp.Message{}, nil, 0) // seq 1

	ack := func(n int) srp.Packet {
		p := srp.Packet{Seq: srp.NotInUse, Ack: n}
		p.Checksum = srp.Checksum(p)
		return p
	}

	// ACK 1 first: window cannot move yet.
	s.Handle(ack(1), nil, 0)
	assert.Equal(t, 2, s.Outstanding())

	// ACK 0 releases both.
	outs := s.Handle(ack(0), nil, 0)
	assert.Equal(t, 0, s.Outstanding())
	assert.Empty(t, outs, "nothing outstanding, no timer restart")
	assert.Equal(t, 2, s.Stats().AcksReceived)

	// A duplicate ACK is ignored.
	s.Handle(ack(0), nil, 0)
	assert.Equal(t, 1, s.Stats().AcksIgnored)
}

// TestSender_CorruptAckIgnored damages an ACK in flight.
func TestSender_CorruptAckIgnored(t *testing.T) {
	s, err := srp.NewSender(cfg)
	require.NoError(t, err)
	s.Handle(srp.Message{}, nil, 0)

	p := srp.Packet{Seq: srp.NotInUse, Ack: 0}
	p.Checksum = srp.Checksum(p) + 1
	s.Handle(p, nil, 0)
	assert.Equal(t, 1, s.Outstanding(), "corrupt ACK must not slide the window")
	assert.Equal(t, 1, s.Stats().AcksIgnored)
}

// TestReceiver_OutOfOrderBuffering delivers only once the gap closes.
func TestReceiver_OutOfOrderBuffering(t *testing.T) {
	r, err := srp.NewReceiver(cfg)
	require.NoError(t, err)

	outs := r.Handle(dataPacket(1, "second"), nil, 0)
	ack := ackOf(t, outs)
	assert.Equal(t, 1, ack.Ack, "valid arrival is ACKed by its own seq")
	assert.Empty(t, r.Delivered(), "gap at 0 blocks delivery")

	outs = r.Handle(dataPacket(0, "first"), nil, 0)
	ack = ackOf(t, outs)
	assert.Equal(t, 0, ack.Ack)

	got := r.Delivered()
	require.Len(t, got, 2)
	assert.Equal(t, byte('f'), got[0].Data[0])
	assert.Equal(t, byte('s'), got[1].Data[0])
	assert.Equal(t, 2, r.Stats().PacketsDelivered)
}

// TestReceiver_ReAcks covers corrupt and duplicate packets.
func TestReceiver_ReAcks(t *testing.T) {
	r, err := srp.NewReceiver(cfg)
	require.NoError(t, err)

	// Corrupt arrival before anything was delivered: re-ACK seq space - 1.
	p := dataPacket(0, "zero")
	p.Checksum++
	ack := ackOf(t, r.Handle(p, nil, 0))
	assert.Equal(t, cfg.SeqSpace-1, ack.Ack)
	assert.False(t, ack.Corrupted(), "re-ACK itself must be well-formed")

	// Deliver 0, then replay it: the duplicate is re-ACKed with 0.
	r.Handle(dataPacket(0, "zero"), nil, 0)
	ack = ackOf(t, r.Handle(dataPacket(0, "zero"), nil, 0))
	assert.Equal(t, 0, ack.Ack)
	assert.Equal(t, 1, r.Stats().PacketsDelivered, "duplicate not delivered twice")
	assert.Equal(t, 2, r.Stats().ReAcks)
}

// TestReceiver_CustomSink routes payloads through WithDeliver.
func TestReceiver_CustomSink(t *testing.T) {
	var sunk []byte
	r, err := srp.NewReceiver(cfg, srp.WithDeliver(func(data [srp.PayloadSize]byte) {
		sunk = append(sunk, data[0])
	}))
	require.NoError(t, err)

	r.Handle(dataPacket(0, "a"), nil, 0)
	r.Handle(dataPacket(1, "b"), nil, 0)
	assert.Equal(t, []byte("ab"), sunk)
	assert.Empty(t, r.Delivered(), "default sink unused")
}

// TestEndpoints_IgnoreForeignPayloads: unknown event types are no-ops.
func TestEndpoints_IgnoreForeignPayloads(t *testing.T) {
	s, _ := srp.NewSender(cfg)
	r, _ := srp.NewReceiver(cfg)
	assert.Empty(t, s.Handle("garbage", nil, 0))
	assert.Empty(t, r.Handle(42, nil, 0))
}

// TestPacket_ErrorOrdering asserts the validation precedence documented on
// Config.
func TestPacket_ErrorOrdering(t *testing.T) {
	bad := srp.Config{WindowSize: -1, SeqSpace: 0, Timeout: 0}
	_, err := srp.NewSender(bad)
	assert.True(t, errors.Is(err, srp.ErrBadWindowSize), "window checked first, got %v", err)
}
