package provider

import (
	"github.com/cpacia/chialite/protocol"
)

// GetCoinRemovalsParams names the block and, optionally, the specific coin
// ids to restrict the removals query to, per spec section 4.3.8.
type GetCoinRemovalsParams struct {
	Height     uint64
	HeaderHash string
	CoinIDs    []string
}

// GetCoinAdditionsParams names the block and, optionally, the specific
// puzzle hashes to restrict the additions query to, per spec section 4.3.8.
type GetCoinAdditionsParams struct {
	Height       uint64
	HeaderHash   string
	PuzzleHashes []string
}

// decodeKeys validates every hex string in hexKeys, per spec section
// 4.3.8's "validate every hex value; if any is invalid, return null
// without sending". Returns (nil, false) on the first invalid entry.
func (p *Provider) decodeKeys(hexKeys []string) ([][32]byte, bool) {
	out := make([][32]byte, 0, len(hexKeys))
	for _, k := range hexKeys {
		key, err := p.addresses.DecodeHex(k)
		if err != nil {
			return nil, false
		}
		out = append(out, key)
	}
	return out, true
}

func toWireKeys(keys [][32]byte) []protocol.PuzzleHashOrCoinKey {
	out := make([]protocol.PuzzleHashOrCoinKey, len(keys))
	for i, k := range keys {
		out[i] = protocol.PuzzleHashOrCoinKey(k)
	}
	return out
}

// GetCoinRemovals requests the coins removed (spent) in a block, optionally
// restricted to a set of coin ids, per spec section 4.3.8. Returns
// (nil, nil), without sending a frame, if headerHash or any coin id fails
// to validate as hex. A reject response is a "not found": (nil, nil).
// Only entries whose coin is present (non-empty) are included.
func (p *Provider) GetCoinRemovals(params GetCoinRemovalsParams) ([]CoinState, error) {
	headerHash, err := p.addresses.DecodeHex(params.HeaderHash)
	if err != nil {
		return nil, nil
	}
	coinIDs, ok := p.decodeKeys(params.CoinIDs)
	if !ok {
		return nil, nil
	}

	frame, err := encodeFrame(protocol.MsgRequestRemovals, protocol.RequestRemovals{
		Height:     params.Height,
		HeaderHash: headerHash,
		CoinNames:  toWireKeys(coinIDs),
	})
	if err != nil {
		return nil, err
	}

	var (
		removals []CoinState
		rejected bool
	)
	consume := func(msg protocol.Message) bool {
		switch msg.Type {
		case protocol.MsgRespondRemovals:
			decoded, err := decodePayload[protocol.RespondRemovals](msg)
			if err != nil {
				p.logger.Warningf("provider: discarding undecodable respond_removals: %s", err)
				return false
			}
			if decoded.Height != params.Height || decoded.HeaderHash != headerHash {
				return false
			}
			removals = make([]CoinState, 0, len(decoded.Removals))
			for _, entry := range decoded.Removals {
				if len(entry.Coins) == 0 {
					continue
				}
				removals = append(removals, translateCoinStates(entry.Coins)...)
			}
			return true

		case protocol.MsgRejectRemovalsRequest:
			decoded, err := decodePayload[protocol.RejectRemovalsRequest](msg)
			if err != nil {
				p.logger.Warningf("provider: discarding undecodable reject_removals_request: %s", err)
				return false
			}
			if decoded.Height != params.Height || decoded.HeaderHash != headerHash {
				return false
			}
			rejected = true
			return true

		default:
			return false
		}
	}

	if err := p.runRequest(frame, consume); err != nil {
		return nil, err
	}
	if rejected {
		return nil, nil
	}
	return removals, nil
}

// GetCoinAdditions requests the coins added (created) in a block,
// optionally restricted to a set of puzzle hashes, per spec section 4.3.8.
// Returns (nil, nil), without sending a frame, if headerHash or any puzzle
// hash fails to validate as hex. A reject response is a "not found":
// (nil, nil). All coin arrays across every entry are flattened.
func (p *Provider) GetCoinAdditions(params GetCoinAdditionsParams) ([]CoinState, error) {
	headerHash, err := p.addresses.DecodeHex(params.HeaderHash)
	if err != nil {
		return nil, nil
	}
	puzzleHashes, ok := p.decodeKeys(params.PuzzleHashes)
	if !ok {
		return nil, nil
	}

	frame, err := encodeFrame(protocol.MsgRequestAdditions, protocol.RequestAdditions{
		Height:       params.Height,
		HeaderHash:   headerHash,
		PuzzleHashes: toWireKeys(puzzleHashes),
	})
	if err != nil {
		return nil, err
	}

	var (
		additions []CoinState
		rejected  bool
	)
	consume := func(msg protocol.Message) bool {
		switch msg.Type {
		case protocol.MsgRespondAdditions:
			decoded, err := decodePayload[protocol.RespondAdditions](msg)
			if err != nil {
				p.logger.Warningf("provider: discarding undecodable respond_additions: %s", err)
				return false
			}
			if decoded.Height != params.Height || decoded.HeaderHash != headerHash {
				return false
			}
			additions = make([]CoinState, 0, len(decoded.Additions))
			for _, entry := range decoded.Additions {
				additions = append(additions, translateCoinStates(entry.Coins)...)
			}
			return true

		case protocol.MsgRejectAdditionsRequest:
			decoded, err := decodePayload[protocol.RejectAdditionsRequest](msg)
			if err != nil {
				p.logger.Warningf("provider: discarding undecodable reject_additions_request: %s", err)
				return false
			}
			if decoded.Height != params.Height || decoded.HeaderHash != headerHash {
				return false
			}
			rejected = true
			return true

		default:
			return false
		}
	}

	if err := p.runRequest(frame, consume); err != nil {
		return nil, err
	}
	if rejected {
		return nil, nil
	}
	return additions, nil
}
