package provider

import "errors"

// Error taxonomy of spec section 7. These are package-level sentinels
// checked with errors.Is, following the teacher's ErrUnsuppertedCoin
// convention rather than a typed exception hierarchy.
var (
	// ErrNotConnected is returned when an operation is attempted before
	// Initialize or after Close.
	ErrNotConnected = errors.New("provider: not connected")

	// ErrTransport is returned when an operation's frame cannot be sent on
	// the underlying channel. The channel's own error is not carried.
	// Initialize reports open failures as engine.ErrTransport instead.
	ErrTransport = errors.New("provider: transport error")

	// ErrTimeout is returned when a request's filter deadline elapses with
	// no match.
	ErrTimeout = errors.New("provider: timeout")

	// ErrCancelled is returned when Close runs while an operation is
	// pending.
	ErrCancelled = errors.New("provider: cancelled")

	// ErrUnsupportedOperation is returned by operations this provider
	// deliberately does not implement (see unsupported.go).
	ErrUnsupportedOperation = errors.New("provider: unsupported operation")
)
