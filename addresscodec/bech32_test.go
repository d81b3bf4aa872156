package addresscodec

import (
	"encoding/hex"
	"testing"
)

func TestBech32mCodec_RoundTrip(t *testing.T) {
	codec := NewBech32mCodec("xch")

	var puzzleHash [32]byte
	for i := range puzzleHash {
		puzzleHash[i] = byte(i)
	}

	addr, err := codec.Encode(puzzleHash)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := codec.Decode(addr)
	if err != nil {
		t.Fatal(err)
	}

	if decoded != puzzleHash {
		t.Errorf("round trip mismatch: got %x, want %x", decoded, puzzleHash)
	}
}

func TestBech32mCodec_WrongHRP(t *testing.T) {
	xchCodec := NewBech32mCodec("xch")
	txchCodec := NewBech32mCodec("txch")

	var puzzleHash [32]byte
	addr, err := xchCodec.Encode(puzzleHash)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := txchCodec.Decode(addr); err != ErrInvalidAddress {
		t.Errorf("expected ErrInvalidAddress for mismatched HRP, got %v", err)
	}
}

func TestBech32mCodec_InvalidAddress(t *testing.T) {
	codec := NewBech32mCodec("xch")

	if _, err := codec.Decode("not-a-bech32-address"); err != ErrInvalidAddress {
		t.Errorf("expected ErrInvalidAddress, got %v", err)
	}
}

func TestBech32mCodec_DecodeHex(t *testing.T) {
	codec := NewBech32mCodec("xch")

	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i * 2)
	}
	hexStr := hex.EncodeToString(raw)

	decoded, err := codec.DecodeHex(hexStr)
	if err != nil {
		t.Fatal(err)
	}

	if hex.EncodeToString(decoded[:]) != hexStr {
		t.Errorf("expected %s, got %x", hexStr, decoded)
	}
}

func TestBech32mCodec_DecodeHex_Invalid(t *testing.T) {
	codec := NewBech32mCodec("xch")

	cases := []string{"", "zz", "aabb", hex.EncodeToString(make([]byte, 31))}
	for _, c := range cases {
		if _, err := codec.DecodeHex(c); err != ErrInvalidPuzzleHash {
			t.Errorf("input %q: expected ErrInvalidPuzzleHash, got %v", c, err)
		}
	}
}
