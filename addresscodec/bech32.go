// Package addresscodec implements the AddressCodec collaborator named in
// spec section 1 as out of scope for the core engine: validation of hex
// puzzle hashes and conversion between bech32m addresses and 32-byte puzzle
// hashes.
package addresscodec

import (
	"encoding/hex"
	"errors"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// ErrInvalidAddress is returned when a string is not a well-formed bech32m
// address for the configured HRP.
var ErrInvalidAddress = errors.New("addresscodec: invalid address")

// ErrInvalidPuzzleHash is returned when a string is not a 32-byte hex value.
var ErrInvalidPuzzleHash = errors.New("addresscodec: invalid puzzle hash")

// AddressCodec validates hex puzzle hashes and converts between bech32m
// addresses and 32-byte puzzle hashes for a single configured HRP.
type AddressCodec interface {
	// HRP returns the human-readable prefix this codec encodes/decodes for
	// (e.g. "xch" for mainnet, "txch" for testnet).
	HRP() string

	// Encode converts a 32-byte puzzle hash into a bech32m address.
	Encode(puzzleHash [32]byte) (string, error)

	// Decode converts a bech32m address into a 32-byte puzzle hash. It
	// returns ErrInvalidAddress if addr is not bech32m, or does not carry
	// the codec's configured HRP, or does not decode to exactly 32 bytes.
	Decode(addr string) ([32]byte, error)

	// DecodeHex validates and decodes a hex-encoded 32-byte puzzle hash.
	DecodeHex(hexPuzzleHash string) ([32]byte, error)
}

// Bech32mCodec is the default AddressCodec implementation.
type Bech32mCodec struct {
	hrp string
}

// NewBech32mCodec returns a Bech32mCodec for the given HRP (section 6:
// "Address HRP is xch").
func NewBech32mCodec(hrp string) *Bech32mCodec {
	return &Bech32mCodec{hrp: hrp}
}

// HRP implements AddressCodec.
func (c *Bech32mCodec) HRP() string {
	return c.hrp
}

// Encode implements AddressCodec.
func (c *Bech32mCodec) Encode(puzzleHash [32]byte) (string, error) {
	converted, err := bech32.ConvertBits(puzzleHash[:], 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.EncodeM(c.hrp, converted)
}

// Decode implements AddressCodec.
func (c *Bech32mCodec) Decode(addr string) ([32]byte, error) {
	var out [32]byte

	hrp, data, encoding, err := bech32.DecodeGeneric(addr)
	if err != nil {
		return out, ErrInvalidAddress
	}
	if encoding != bech32.VersionM {
		return out, ErrInvalidAddress
	}
	if hrp != c.hrp {
		return out, ErrInvalidAddress
	}

	converted, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil || len(converted) != 32 {
		return out, ErrInvalidAddress
	}

	copy(out[:], converted)
	return out, nil
}

// DecodeHex implements AddressCodec.
func (c *Bech32mCodec) DecodeHex(hexPuzzleHash string) ([32]byte, error) {
	var out [32]byte

	b, err := hex.DecodeString(hexPuzzleHash)
	if err != nil || len(b) != 32 {
		return out, ErrInvalidPuzzleHash
	}

	copy(out[:], b)
	return out, nil
}
