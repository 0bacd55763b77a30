// Package srp implements the selective-repeat ARQ protocol as a pair of
// sim.Process endpoints joined by lossy channel models.
//
// # Protocol
//
// The Sender accepts fixed-size application messages, stamps each with a
// sequence number from a circular space, and transmits while its window has
// room; messages arriving against a full window are dropped and counted. A
// single retransmit timer guards the oldest unacknowledged packet: on
// timeout only that packet is resent. ACKs slide the window over every
// consecutively acknowledged slot.
//
// The Receiver buffers in-window packets out of order, acknowledges each
// valid arrival by its own sequence number, and delivers buffered payloads
// upward as soon as they become consecutive. Corrupt or out-of-window
// packets are answered with a re-ACK of the newest in-order sequence.
//
// Packets carry an additive checksum over header and payload; corruption is
// any mismatch. Defaults mirror the classic exercise: window 6, sequence
// space 7 (window+1, the minimum for selective repeat), timeout 16 time
// units.
//
// # Determinism
//
// Endpoints hold no clocks or goroutines of their own; all timing flows
// through a sim.Simulator, and Channel randomness comes from a caller-seeded
// source, so a Session run is reproducible bit for bit.
package srp
