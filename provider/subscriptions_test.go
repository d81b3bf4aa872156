package provider

import (
	"math/big"
	"testing"
	"time"

	"github.com/cpacia/chialite/protocol"
)

// TestProvider_SubscribeToPuzzleHashUpdates_TwoIndependentSubscribers covers
// the round-trip/idempotence property of spec section 8: subscribing twice
// with the same key installs two independent subscribers, both of which
// receive every matching frame in order.
func TestProvider_SubscribeToPuzzleHashUpdates_TwoIndependentSubscribers(t *testing.T) {
	p, channel := newTestProvider(t)
	defer p.Close()

	ph := bytes32(0x50)

	sub1, err := p.SubscribeToPuzzleHashUpdates(ph, 0)
	if err != nil {
		t.Fatal(err)
	}
	sub2, err := p.SubscribeToPuzzleHashUpdates(ph, 0)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		encodeAndDeliver(t, channel, protocol.MsgRespondToPhUpdate, protocol.RespondToPHUpdate{
			PuzzleHashes: [][32]byte{ph},
			CoinStates:   []protocol.CoinStateWire{{PuzzleHash: ph, Amount: []byte{byte(i + 1)}}},
		})
	}

	for _, sub := range []<-chan []CoinState{sub1, sub2} {
		for i := 0; i < 3; i++ {
			select {
			case states := <-sub:
				if len(states) != 1 || states[0].Coin.Amount.Int64() != int64(i+1) {
					t.Errorf("delivery %d: unexpected states %+v", i, states)
				}
			case <-time.After(time.Second):
				t.Fatalf("subscriber never received delivery %d", i)
			}
		}
	}
}

func TestProvider_SubscribeToCoinUpdates_FiltersByCoinID(t *testing.T) {
	p, channel := newTestProvider(t)
	defer p.Close()

	ph := bytes32(0x51)
	target := Coin{ParentCoinInfo: bytes32(0x52), PuzzleHash: ph, Amount: big.NewInt(7)}
	other := Coin{ParentCoinInfo: bytes32(0x53), PuzzleHash: ph, Amount: big.NewInt(9)}

	sub, err := p.SubscribeToCoinUpdates(ph, target.ID(), 0)
	if err != nil {
		t.Fatal(err)
	}

	encodeAndDeliver(t, channel, protocol.MsgRespondToPhUpdate, protocol.RespondToPHUpdate{
		PuzzleHashes: [][32]byte{ph},
		CoinStates: []protocol.CoinStateWire{
			{ParentCoinInfo: other.ParentCoinInfo, PuzzleHash: ph, Amount: []byte{9}},
			{ParentCoinInfo: target.ParentCoinInfo, PuzzleHash: ph, Amount: []byte{7}},
		},
	})

	select {
	case state := <-sub:
		if state.Coin.ID() != target.ID() {
			t.Errorf("expected the target coin, got %+v", state)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the matching coin")
	}

	select {
	case state := <-sub:
		t.Fatalf("expected only one delivery, got a second: %+v", state)
	case <-time.After(50 * time.Millisecond):
	}
}
