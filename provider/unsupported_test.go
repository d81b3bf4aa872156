package provider

import "testing"

func TestProvider_UnsupportedOperations(t *testing.T) {
	p, _ := newTestProvider(t)
	defer p.Close()

	if _, err := p.GetAddress(); err != ErrUnsupportedOperation {
		t.Errorf("GetAddress: expected ErrUnsupportedOperation, got %v", err)
	}
	if err := p.Transfer("", 0); err != ErrUnsupportedOperation {
		t.Errorf("Transfer: expected ErrUnsupportedOperation, got %v", err)
	}
	if err := p.TransferCAT("", "", 0); err != ErrUnsupportedOperation {
		t.Errorf("TransferCAT: expected ErrUnsupportedOperation, got %v", err)
	}
	if err := p.AcceptOffer(""); err != ErrUnsupportedOperation {
		t.Errorf("AcceptOffer: expected ErrUnsupportedOperation, got %v", err)
	}
	if err := p.SubscribeToAddressChanges(); err != ErrUnsupportedOperation {
		t.Errorf("SubscribeToAddressChanges: expected ErrUnsupportedOperation, got %v", err)
	}
}
