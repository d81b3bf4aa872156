package provider

import (
	"math/big"

	"github.com/cpacia/chialite/protocol"
)

// GetBalanceParams selects the puzzle hash to query, per spec section
// 4.3.2. Address takes precedence over PuzzleHash when both are set and
// Address decodes under the configured HRP -- see resolvePuzzleHash.
type GetBalanceParams struct {
	Address    string
	PuzzleHash string
	MinHeight  uint64
}

// resolvePuzzleHash implements step 1 of 4.3.2: Address is tried first
// (bech32m, configured HRP), falling back to PuzzleHash as hex. Either
// failing to decode is InvalidInput, coerced by callers to a nil/empty
// result rather than propagated, per section 7's note on that coercion.
func (p *Provider) resolvePuzzleHash(address, puzzleHash string) ([32]byte, bool) {
	if address != "" {
		if ph, err := p.addresses.Decode(address); err == nil {
			return ph, true
		}
	}
	if puzzleHash != "" {
		if ph, err := p.addresses.DecodeHex(puzzleHash); err == nil {
			return ph, true
		}
	}
	return [32]byte{}, false
}

// GetBalance sums the amount of every unspent coin state at the resolved
// puzzle hash, per spec section 4.3.2. Returns (nil, nil) when neither
// Address nor PuzzleHash resolves to a valid 32-byte value -- InvalidInput
// coerced to a "no result" rather than propagated, as the spec requires.
//
// Registering interest has a side effect on the full node: it will push
// every future update for this puzzle hash to this connection regardless
// of the fact that this call only waits for the first reply.
func (p *Provider) GetBalance(params GetBalanceParams) (*big.Int, error) {
	ph, ok := p.resolvePuzzleHash(params.Address, params.PuzzleHash)
	if !ok {
		return nil, nil
	}

	frame, err := encodeFrame(protocol.MsgRegisterInterestInPuzzleHash, protocol.RegisterInterestInPuzzleHash{
		PuzzleHash: ph,
		MinHeight:  params.MinHeight,
	})
	if err != nil {
		return nil, err
	}

	var update protocol.RespondToPHUpdate
	consume := func(msg protocol.Message) bool {
		if msg.Type != protocol.MsgRespondToPhUpdate {
			return false
		}
		decoded, err := decodePayload[protocol.RespondToPHUpdate](msg)
		if err != nil {
			p.logger.Warningf("provider: discarding undecodable respond_to_ph_update: %s", err)
			return false
		}
		if !containsPuzzleHash(decoded.PuzzleHashes, ph) {
			return false
		}
		update = decoded
		return true
	}

	if err := p.runRequest(frame, consume); err != nil {
		return nil, err
	}

	sum := new(big.Int)
	for _, cs := range update.CoinStates {
		if cs.PuzzleHash != ph {
			continue
		}
		if cs.SpentHeight != nil {
			continue
		}
		sum.Add(sum, new(big.Int).SetBytes(cs.Amount))
	}
	return sum, nil
}

func containsPuzzleHash(hashes [][32]byte, target [32]byte) bool {
	for _, h := range hashes {
		if h == target {
			return true
		}
	}
	return false
}
