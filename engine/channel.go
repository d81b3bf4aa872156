// Package engine implements the Message Manager: the filter registry and
// dispatch loop that demultiplexes a single full-duplex connection into
// many in-flight requests and long-lived subscriptions, with no help from
// a request id on the wire.
package engine

import "context"

// MessageChannel is the external transport collaborator named in spec
// section 4.1. Byte framing, TLS, and the handshake are its problem; the
// Manager only ever deals in whole protocol.Message values.
type MessageChannel interface {
	// Open establishes the transport and completes the protocol handshake.
	// It returns a non-nil error on I/O or handshake failure; the Manager
	// wraps that error as ErrTransport.
	Open(ctx context.Context) error

	// Send enqueues a serialized frame. It must not block indefinitely; the
	// implementation applies its own backpressure and may fail fast.
	Send(frame []byte) error

	// OnMessage registers the single sink that receives complete inbound
	// frames in arrival order. Calling it more than once replaces the
	// previous sink.
	OnMessage(sink func(frame []byte))

	// Close idempotently shuts the channel down. After Close returns, no
	// sink is invoked again and Send fails.
	Close() error
}
