// Package sim provides a deterministic, single-threaded discrete-event
// scheduler for protocol simulations.
//
// # Model
//
// A simulation is a set of Process values exchanging opaque payloads through
// a central event queue. Delivering an event advances the virtual clock to
// the event's arrival time and hands the payload to the destination Process,
// which may emit further Output events (to peers or to itself, e.g. timers).
//
// # Determinism
//
// Events are ordered by arrival time with a FIFO tie-break on insertion
// sequence, so two events scheduled for the same instant are delivered in
// the order they were scheduled. Given the same processes and the same
// initial events, a run is fully reproducible.
//
// # Concurrency
//
// There is none, deliberately: the scheduler runs on the caller's goroutine
// and processes one event at a time. Simulated nodes never execute
// concurrently, so Process implementations need no locking.
package sim
