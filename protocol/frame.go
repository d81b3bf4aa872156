package protocol

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// ErrShortFrame is returned by DecodeFrame when the given bytes do not
// contain a complete envelope. MessageChannel implementations are expected
// to deliver whole frames, so callers should treat this as a transport bug
// rather than something to retry on.
var ErrShortFrame = errors.New("protocol: short frame")

// EncodeFrame serializes the fixed wire envelope {type u8, id optional u16,
// data bytes}. The id is written with a one-byte presence flag followed by
// the two id bytes when present, matching section 6 of the wire protocol.
func EncodeFrame(msg Message) []byte {
	buf := new(bytes.Buffer)
	buf.WriteByte(byte(msg.Type))
	if msg.ID != nil {
		buf.WriteByte(1)
		idBytes := make([]byte, 2)
		binary.BigEndian.PutUint16(idBytes, *msg.ID)
		buf.Write(idBytes)
	} else {
		buf.WriteByte(0)
	}
	buf.Write(msg.Data)
	return buf.Bytes()
}

// DecodeFrame parses a single whole frame delivered by a MessageChannel.
func DecodeFrame(raw []byte) (Message, error) {
	r := bytes.NewReader(raw)

	typeByte, err := r.ReadByte()
	if err != nil {
		return Message{}, ErrShortFrame
	}

	hasID, err := r.ReadByte()
	if err != nil {
		return Message{}, ErrShortFrame
	}

	var id *uint16
	if hasID == 1 {
		idBytes := make([]byte, 2)
		if _, err := io.ReadFull(r, idBytes); err != nil {
			return Message{}, ErrShortFrame
		}
		v := binary.BigEndian.Uint16(idBytes)
		id = &v
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Message{}, ErrShortFrame
	}

	return Message{
		Type: Type(typeByte),
		ID:   id,
		Data: data,
	}, nil
}
