package engine

import (
	"testing"
	"time"

	"github.com/cpacia/chialite/protocol"
)

func TestNewRequestFilter_DefaultsTimeout(t *testing.T) {
	f, completion := NewRequestFilter(nil, func(protocol.Message) bool { return false }, 0)

	if f.ExpectedMaxResponseWait != DefaultRequestTimeout {
		t.Errorf("expected default timeout %s, got %s", DefaultRequestTimeout, f.ExpectedMaxResponseWait)
	}
	if !f.DeleteAfterFirstConsumed {
		t.Error("expected one-shot filter to delete after first consumed")
	}
	if completion == nil {
		t.Error("expected a non-nil completion channel")
	}
}

func TestNewRequestFilter_ExplicitTimeout(t *testing.T) {
	f, _ := NewRequestFilter(nil, func(protocol.Message) bool { return false }, 5*time.Second)
	if f.ExpectedMaxResponseWait != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", f.ExpectedMaxResponseWait)
	}
}

func TestNewSubscriptionFilter_NoTimeoutNoCompletion(t *testing.T) {
	f := NewSubscriptionFilter(nil, func(protocol.Message) bool { return false })

	if f.DeleteAfterFirstConsumed {
		t.Error("expected subscription filter to persist across matches")
	}
	if f.ExpectedMaxResponseWait != 0 {
		t.Errorf("expected no timeout for a subscription filter, got %s", f.ExpectedMaxResponseWait)
	}
	if f.completion != nil {
		t.Error("expected no completion channel for a subscription filter")
	}
}
