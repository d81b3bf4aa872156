package provider

import (
	"testing"
	"time"

	"github.com/cpacia/chialite/protocol"
)

// TestProvider_GetPuzzleSolution_Rejected is scenario 3 of spec section 8.
func TestProvider_GetPuzzleSolution_Rejected(t *testing.T) {
	p, channel := newTestProvider(t)
	defer p.Close()

	coinID := bytes32(0x10)
	const height = uint64(7)

	channel.OnSend = func(frame []byte) {
		encodeAndDeliver(t, channel, protocol.MsgRejectPuzzleSolution, protocol.RejectPuzzleSolution{
			CoinName: coinID,
			Height:   height,
		})
	}

	solution, err := p.GetPuzzleSolution(GetPuzzleSolutionParams{CoinID: coinID, Height: height})
	if err != nil {
		t.Fatal(err)
	}
	if solution != nil {
		t.Errorf("expected nil solution on reject, got %+v", solution)
	}
}

func TestProvider_GetPuzzleSolution_Success(t *testing.T) {
	p, channel := newTestProvider(t)
	defer p.Close()

	coinID := bytes32(0x11)
	const height = uint64(9)

	channel.OnSend = func(frame []byte) {
		encodeAndDeliver(t, channel, protocol.MsgRespondPuzzleSolution, protocol.RespondPuzzleSolution{
			Response: protocol.PuzzleSolutionResponseWire{
				CoinName:     coinID,
				Height:       height,
				PuzzleReveal: []byte{0xAB},
				Solution:     []byte{0xCD},
			},
		})
	}

	solution, err := p.GetPuzzleSolution(GetPuzzleSolutionParams{CoinID: coinID, Height: height})
	if err != nil {
		t.Fatal(err)
	}
	if solution == nil {
		t.Fatal("expected a non-nil solution")
	}
	if solution.CoinName != coinID || solution.Height != height {
		t.Errorf("unexpected translated solution: %+v", solution)
	}
}

func TestProvider_GetPuzzleSolution_Timeout(t *testing.T) {
	p, _ := newTestProvider(t)
	defer p.Close()

	_, err := p.GetPuzzleSolution(GetPuzzleSolutionParams{CoinID: bytes32(0x12), Height: 1})
	if err != ErrTimeout {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}

func TestProvider_GetPuzzleSolution_MismatchedKeysIgnored(t *testing.T) {
	p, channel := newTestProvider(t)
	defer p.Close()

	coinID := bytes32(0x13)
	const height = uint64(5)

	channel.OnSend = func(frame []byte) {
		// A reply for a different coin should not satisfy this request.
		encodeAndDeliver(t, channel, protocol.MsgRejectPuzzleSolution, protocol.RejectPuzzleSolution{
			CoinName: bytes32(0x99),
			Height:   height,
		})
		go func() {
			time.Sleep(20 * time.Millisecond)
			encodeAndDeliver(t, channel, protocol.MsgRespondPuzzleSolution, protocol.RespondPuzzleSolution{
				Response: protocol.PuzzleSolutionResponseWire{CoinName: coinID, Height: height},
			})
		}()
	}

	solution, err := p.GetPuzzleSolution(GetPuzzleSolutionParams{CoinID: coinID, Height: height})
	if err != nil {
		t.Fatal(err)
	}
	if solution == nil || solution.CoinName != coinID {
		t.Errorf("expected the correctly-keyed response to be matched, got %+v", solution)
	}
}
