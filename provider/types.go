// Package provider implements the query facade described in spec section
// 4.3: typed operations that build protocol requests, install filters on
// the engine.Manager, and translate matching responses into the public
// data model below.
package provider

import (
	"crypto/sha256"
	"math/big"

	"github.com/cpacia/chialite/protocol"
)

// Coin is a UTXO: (parent_coin_info, puzzle_hash, amount).
type Coin struct {
	ParentCoinInfo [32]byte
	PuzzleHash     [32]byte
	Amount         *big.Int
}

// ID computes the coin id: sha256(parent_coin_info || puzzle_hash ||
// canonical_amount_bytes). canonical_amount_bytes follows CLVM's integer
// encoding: minimal big-endian, with a single leading zero byte inserted
// only when the minimal encoding's most significant bit would otherwise be
// mistaken for a sign bit. The spec names the formula but not this byte
// layout; see DESIGN.md for why this resolution was chosen.
func (c Coin) ID() [32]byte {
	h := sha256.New()
	h.Write(c.ParentCoinInfo[:])
	h.Write(c.PuzzleHash[:])
	h.Write(CanonicalAmountBytes(c.Amount))

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// CanonicalAmountBytes renders amount using CLVM's minimal big-endian
// integer encoding: no amount is negative (coin amounts are always
// non-negative), a zero amount encodes as an empty byte string, and a
// leading 0x00 byte is prepended whenever the minimal big-endian
// representation's high bit is set, so the value is never misread as
// negative by a two's-complement reader.
func CanonicalAmountBytes(amount *big.Int) []byte {
	if amount == nil || amount.Sign() == 0 {
		return nil
	}

	b := amount.Bytes()
	if len(b) > 0 && b[0]&0x80 != 0 {
		out := make([]byte, len(b)+1)
		copy(out[1:], b)
		return out
	}
	return b
}

// CoinState is a coin together with the block heights at which it was
// created and (if applicable) spent.
type CoinState struct {
	Coin          Coin
	SpentHeight   *uint64
	CreatedHeight *uint64
}

// BlockHeader is the translated form of a respond_block_header /
// respond_header_blocks entry.
type BlockHeader struct {
	Height         uint64
	HeaderHash     [32]byte
	PrevHeaderHash [32]byte
}

// PuzzleSolution is the translated form of a respond_puzzle_solution.
type PuzzleSolution struct {
	CoinName     [32]byte
	Height       uint64
	PuzzleReveal []byte
	Solution     []byte
}

func translateCoinState(w protocol.CoinStateWire) CoinState {
	return CoinState{
		Coin: Coin{
			ParentCoinInfo: w.ParentCoinInfo,
			PuzzleHash:     w.PuzzleHash,
			Amount:         new(big.Int).SetBytes(w.Amount),
		},
		SpentHeight:   w.SpentHeight,
		CreatedHeight: w.CreatedHeight,
	}
}

func translateCoinStates(ws []protocol.CoinStateWire) []CoinState {
	out := make([]CoinState, 0, len(ws))
	for _, w := range ws {
		out = append(out, translateCoinState(w))
	}
	return out
}

func translateBlockHeader(w protocol.BlockHeaderWire) BlockHeader {
	return BlockHeader{
		Height:         w.RewardChainBlock.Height,
		HeaderHash:     w.HeaderHash,
		PrevHeaderHash: w.PrevHeaderHash,
	}
}
