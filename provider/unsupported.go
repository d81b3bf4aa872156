package provider

// GetAddress is unsupported: this adapter holds no keys, per spec section
// 4.3.9. This is a contract, not a TODO.
func (p *Provider) GetAddress() (string, error) {
	return "", ErrUnsupportedOperation
}

// Transfer is unsupported: this adapter holds no keys, per spec section
// 4.3.9.
func (p *Provider) Transfer(puzzleHash string, amount uint64) error {
	return ErrUnsupportedOperation
}

// TransferCAT is unsupported: this adapter holds no keys, per spec section
// 4.3.9.
func (p *Provider) TransferCAT(assetID, puzzleHash string, amount uint64) error {
	return ErrUnsupportedOperation
}

// AcceptOffer is unsupported: this adapter holds no keys, per spec section
// 4.3.9.
func (p *Provider) AcceptOffer(offer string) error {
	return ErrUnsupportedOperation
}

// SubscribeToAddressChanges is unsupported: this adapter holds no keys, per
// spec section 4.3.9.
func (p *Provider) SubscribeToAddressChanges() error {
	return ErrUnsupportedOperation
}
