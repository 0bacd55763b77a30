// Package topo provides tunable options and error definitions for the
// topology loader.
package topo

import (
	"context"
	"errors"
)

// Sentinel lines demarcating the two input sections.
const (
	// SentinelStart ends the node section and opens the edge section.
	SentinelStart = "START"

	// SentinelUpdate ends the edge section; nothing after it is consumed.
	SentinelUpdate = "UPDATE"
)

// Sentinel errors for topology loading.
var (
	// ErrNilReader is returned when Load receives a nil input stream.
	ErrNilReader = errors.New("topo: input reader is nil")

	// ErrEmptyNode is returned for a blank line inside the node section.
	ErrEmptyNode = errors.New("topo: empty node name")

	// ErrMalformedEdge is returned for an edge line that does not split into
	// exactly three fields, or whose third field is not an integer.
	ErrMalformedEdge = errors.New("topo: malformed edge line")

	// ErrUnexpectedEOF is returned when the stream ends before a required
	// sentinel has been read.
	ErrUnexpectedEOF = errors.New("topo: unexpected end of input")

	// ErrUnknownNode is returned under WithStrictNodes for an edge endpoint
	// that was never declared in the node section.
	ErrUnknownNode = errors.New("topo: edge references undeclared node")
)

// Option configures loader behavior via functional arguments.
type Option func(*Options)

// Options holds parameters that customize a single Load call.
type Options struct {
	// Ctx allows cancellation between input lines.
	Ctx context.Context

	// StrictNodes rejects edges whose endpoints were not declared in the
	// node section. Off by default: the wire format silently accepts them.
	StrictNodes bool
}

// DefaultOptions returns Options matching the original format semantics:
// background context, undeclared edge endpoints silently accepted.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		StrictNodes: false,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrictNodes makes edges referencing undeclared nodes fail with
// ErrUnknownNode instead of creating the node silently.
func WithStrictNodes() Option {
	return func(o *Options) {
		o.StrictNodes = true
	}
}
