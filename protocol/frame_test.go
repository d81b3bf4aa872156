package protocol

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeFrame_NoID(t *testing.T) {
	msg := Message{
		Type: MsgNewPeakWallet,
		Data: []byte("hello"),
	}

	raw := EncodeFrame(msg)

	decoded, err := DecodeFrame(raw)
	if err != nil {
		t.Fatal(err)
	}

	if decoded.Type != msg.Type {
		t.Errorf("expected type %s, got %s", msg.Type, decoded.Type)
	}
	if decoded.ID != nil {
		t.Errorf("expected nil id, got %v", *decoded.ID)
	}
	if !bytes.Equal(decoded.Data, msg.Data) {
		t.Errorf("expected data %q, got %q", msg.Data, decoded.Data)
	}
}

func TestEncodeDecodeFrame_WithID(t *testing.T) {
	id := uint16(42)
	msg := Message{
		Type: MsgRequestBlockHeader,
		ID:   &id,
		Data: []byte{1, 2, 3},
	}

	raw := EncodeFrame(msg)

	decoded, err := DecodeFrame(raw)
	if err != nil {
		t.Fatal(err)
	}

	if decoded.ID == nil || *decoded.ID != id {
		t.Errorf("expected id %d, got %v", id, decoded.ID)
	}
	if !bytes.Equal(decoded.Data, msg.Data) {
		t.Errorf("expected data %v, got %v", msg.Data, decoded.Data)
	}
}

func TestDecodeFrame_Short(t *testing.T) {
	if _, err := DecodeFrame(nil); err != ErrShortFrame {
		t.Errorf("expected ErrShortFrame, got %v", err)
	}
	if _, err := DecodeFrame([]byte{1}); err != ErrShortFrame {
		t.Errorf("expected ErrShortFrame, got %v", err)
	}
}
