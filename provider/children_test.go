package provider

import (
	"testing"

	"github.com/cpacia/chialite/protocol"
)

func TestProvider_GetCoinChildren_EmptyReturnsEmptySliceNotNil(t *testing.T) {
	p, channel := newTestProvider(t)
	defer p.Close()

	coinID := bytes32(0x30)
	channel.OnSend = func(frame []byte) {
		encodeAndDeliver(t, channel, protocol.MsgRespondChildren, protocol.RespondChildren{})
	}

	children, err := p.GetCoinChildren(coinID)
	if err != nil {
		t.Fatal(err)
	}
	if children == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(children) != 0 {
		t.Errorf("expected no children, got %d", len(children))
	}
}

func TestProvider_GetCoinChildren_MatchingParent(t *testing.T) {
	p, channel := newTestProvider(t)
	defer p.Close()

	coinID := bytes32(0x31)
	childPH := bytes32(0x32)

	channel.OnSend = func(frame []byte) {
		encodeAndDeliver(t, channel, protocol.MsgRespondChildren, protocol.RespondChildren{
			CoinStates: []protocol.CoinStateWire{
				{ParentCoinInfo: coinID, PuzzleHash: childPH, Amount: []byte{5}},
			},
		})
	}

	children, err := p.GetCoinChildren(coinID)
	if err != nil {
		t.Fatal(err)
	}
	if len(children) != 1 || children[0].Coin.PuzzleHash != childPH {
		t.Errorf("unexpected children: %+v", children)
	}
}

func TestProvider_GetCoinChildren_MismatchedParentReturnsEmpty(t *testing.T) {
	p, channel := newTestProvider(t)
	defer p.Close()

	coinID := bytes32(0x33)
	wrongParent := bytes32(0x34)

	channel.OnSend = func(frame []byte) {
		encodeAndDeliver(t, channel, protocol.MsgRespondChildren, protocol.RespondChildren{
			CoinStates: []protocol.CoinStateWire{
				{ParentCoinInfo: wrongParent, Amount: []byte{5}},
			},
		})
	}

	children, err := p.GetCoinChildren(coinID)
	if err != nil {
		t.Fatalf("expected no error for a response whose first child's parent does not match, got %v", err)
	}
	if children == nil || len(children) != 0 {
		t.Errorf("expected an empty slice for a mismatched first parent, got %+v", children)
	}
}
