package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/cpacia/chialite/protocol"
)

// DefaultRequestTimeout is the default expectedMaxResponseWait for a
// one-shot request filter, per spec section 3.
const DefaultRequestTimeout = 15 * time.Second

// Filter is a registered intent to send zero or one outbound frame and to
// consume matching inbound frames via a predicate, per spec section 3.
//
// A Filter is either a one-shot request filter (DeleteAfterFirstConsumed
// true, backed by a completion channel) or a persistent subscription filter
// (DeleteAfterFirstConsumed false, no completion channel, callbacks run
// inside Consume). The two constructors below are the only way to build one,
// so this invariant can't be violated by construction.
type Filter struct {
	id uuid.UUID

	// MessageToSend is the optional outbound frame sent exactly once at
	// registration time. Nil for passive filters such as the peak watcher.
	MessageToSend []byte

	// Consume is a pure predicate over an inbound message: it returns true
	// iff this filter accepts the frame. Subscription predicates also
	// perform delivery (pushing to a channel) as a side effect before
	// returning true; they must not block.
	Consume func(msg protocol.Message) bool

	// DeleteAfterFirstConsumed is true for one-shot request/response
	// filters, false for long-lived subscriptions.
	DeleteAfterFirstConsumed bool

	// ExpectedMaxResponseWait is the timeout after which an un-matched
	// one-shot filter is removed and failed with ErrTimeout. Zero disables
	// the timeout; always zero for subscription filters.
	ExpectedMaxResponseWait time.Duration

	completion chan error
}

// NewRequestFilter builds a one-shot filter. messageToSend may be nil for a
// filter that only observes traffic sent by some other call (none of this
// adapter's operations currently need that, but the Manager doesn't assume
// otherwise). A zero timeout falls back to DefaultRequestTimeout; pass a
// negative duration to explicitly disable the timeout for a one-shot filter.
func NewRequestFilter(messageToSend []byte, consume func(protocol.Message) bool, timeout time.Duration) (*Filter, <-chan error) {
	if timeout == 0 {
		timeout = DefaultRequestTimeout
	}
	if timeout < 0 {
		timeout = 0
	}

	completion := make(chan error, 1)
	f := &Filter{
		id:                       uuid.New(),
		MessageToSend:            messageToSend,
		Consume:                  consume,
		DeleteAfterFirstConsumed: true,
		ExpectedMaxResponseWait:  timeout,
		completion:               completion,
	}
	return f, completion
}

// NewSubscriptionFilter builds a persistent filter with no timeout and no
// completion. messageToSend is the registration frame sent once (e.g.
// register_interest_in_puzzle_hash, or nil for the peak watcher, which is
// purely passive).
func NewSubscriptionFilter(messageToSend []byte, consume func(protocol.Message) bool) *Filter {
	return &Filter{
		id:                       uuid.New(),
		MessageToSend:            messageToSend,
		Consume:                  consume,
		DeleteAfterFirstConsumed: false,
		ExpectedMaxResponseWait:  0,
	}
}
