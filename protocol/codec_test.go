package protocol

import "testing"

func TestCBORCodec_RoundTrip(t *testing.T) {
	codec, err := NewCBORCodec[RequestBlockHeader]()
	if err != nil {
		t.Fatal(err)
	}

	req := RequestBlockHeader{Height: 12345}

	data, err := codec.Encode(req)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := codec.Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	if decoded.Height != req.Height {
		t.Errorf("expected height %d, got %d", req.Height, decoded.Height)
	}
}

func TestCBORCodec_Deterministic(t *testing.T) {
	codec, err := NewCBORCodec[NewPeakWallet]()
	if err != nil {
		t.Fatal(err)
	}

	msg := NewPeakWallet{Height: 100, PrevHeight: 99}

	a, err := codec.Encode(msg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := codec.Encode(msg)
	if err != nil {
		t.Fatal(err)
	}

	if string(a) != string(b) {
		t.Error("expected canonical encoding to be deterministic")
	}
}
