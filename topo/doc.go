// Package topo loads network topologies from the classic two-section,
// line-oriented stream format used by routing-simulation exercises, and from
// a declarative YAML document.
//
// # Wire format
//
// The stream carries a node section, the sentinel START, an edge section,
// and the sentinel UPDATE:
//
//	<node_1>
//	...
//	<node_n>
//	START
//	<a> <b> <weight>
//	...
//	UPDATE
//
// Sentinels are case-sensitive exact matches after trimming surrounding
// whitespace. Node lines are arbitrary non-empty trimmed strings. Edge lines
// are exactly three whitespace-separated fields whose third field parses as
// an integer. The loader stops immediately after consuming UPDATE; nothing
// that follows on the stream is interpreted.
//
// # Parser state machine
//
//	ReadingNodes --START--> ReadingEdges --UPDATE--> Done
//
// Only exact sentinel matches trigger transitions. End of input before a
// sentinel is a hard failure (ErrUnexpectedEOF), distinct from malformed
// content (ErrMalformedEdge, ErrEmptyNode).
//
// # Undeclared endpoints
//
// An edge may reference a node that never appeared in the node section; by
// default the node is created silently, exactly as the original format
// behaves. WithStrictNodes() turns this into ErrUnknownNode instead.
//
// # YAML documents
//
// Document is the declarative alternative (apiVersion netlab.io/v1alpha1,
// kind Topology) with explicit node and link lists, loaded via LoadDocument
// and checked by Validate before conversion.
package topo
