package protocol

import (
	"github.com/fxamacker/cbor/v2"
)

// Codec is the external (de)serialization collaborator named in section 1
// as out of scope: encoding and decoding of the canonical byte
// representation of a typed protocol payload is somebody else's problem.
// This adapter only depends on the narrow interface below.
type Codec[T any] interface {
	Encode(v T) ([]byte, error)
	Decode(data []byte) (T, error)
}

// CBORCodec is the default Codec[T] implementation, used unless an embedder
// supplies its own (e.g. one that matches the reference full node's exact
// on-the-wire format bit for bit).
type CBORCodec[T any] struct {
	encMode cbor.EncMode
}

// NewCBORCodec returns a CBORCodec using canonical (deterministic) CBOR
// encoding, so that two calls encoding the same value always produce the
// same bytes.
func NewCBORCodec[T any]() (*CBORCodec[T], error) {
	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		return nil, err
	}
	return &CBORCodec[T]{encMode: mode}, nil
}

// Encode implements Codec[T].
func (c *CBORCodec[T]) Encode(v T) ([]byte, error) {
	return c.encMode.Marshal(v)
}

// Decode implements Codec[T].
func (c *CBORCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := cbor.Unmarshal(data, &v)
	return v, err
}
