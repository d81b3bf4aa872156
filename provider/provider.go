package provider

import (
	"context"
	"errors"
	"time"

	"github.com/op/go-logging"

	"github.com/cpacia/chialite/addresscodec"
	"github.com/cpacia/chialite/engine"
	"github.com/cpacia/chialite/protocol"
)

// Provider is the typed query facade of spec section 4.3: it builds
// protocol requests, installs filters on the engine.Manager, and translates
// matching responses into the public data model of types.go.
type Provider struct {
	manager   *engine.Manager
	addresses addresscodec.AddressCodec
	logger    *logging.Logger

	networkID      string
	requestTimeout time.Duration
}

// New builds a Provider around an already-constructed Manager. The caller
// is responsible for calling Initialize before issuing any operation other
// than GetNetworkID.
func New(manager *engine.Manager, addresses addresscodec.AddressCodec, networkID string, requestTimeout time.Duration, logger *logging.Logger) *Provider {
	if logger == nil {
		logger = logging.MustGetLogger("provider")
	}
	if requestTimeout <= 0 {
		requestTimeout = engine.DefaultRequestTimeout
	}
	return &Provider{
		manager:        manager,
		addresses:      addresses,
		logger:         logger,
		networkID:      networkID,
		requestTimeout: requestTimeout,
	}
}

// Initialize opens the underlying manager/channel. It returns the
// manager's error unchanged: a failure to open is an engine.ErrTransport
// that wraps the channel's own error.
func (p *Provider) Initialize(ctx context.Context) error {
	return p.manager.Initialize(ctx)
}

// Close shuts the provider down; idempotent, delegates to the manager.
func (p *Provider) Close() error {
	return p.manager.Close()
}

// GetNetworkID returns the configured network id (e.g. "mainnet"), per
// spec section 6's public contract. Supplemented: the distilled spec names
// it but never details it; it is a trivial accessor.
func (p *Provider) GetNetworkID() string {
	return p.networkID
}

// GetBlockNumber returns the cached latest peak height, per spec section
// 4.3.1. It never sends a frame and never fails while connected.
func (p *Provider) GetBlockNumber() (uint64, bool) {
	return p.manager.PeakHeight()
}

// encodeFrame encodes a typed payload, wraps it in a frame with the given message
// type, and returns the raw bytes ready for Filter.MessageToSend.
func encodeFrame[T any](msgType protocol.Type, payload T) ([]byte, error) {
	codec, err := protocol.NewCBORCodec[T]()
	if err != nil {
		return nil, err
	}
	data, err := codec.Encode(payload)
	if err != nil {
		return nil, err
	}
	return protocol.EncodeFrame(protocol.Message{Type: msgType, Data: data}), nil
}

// decodePayload decodes msg.Data into T using the canonical CBOR codec.
func decodePayload[T any](msg protocol.Message) (T, error) {
	var zero T
	codec, err := protocol.NewCBORCodec[T]()
	if err != nil {
		return zero, err
	}
	return codec.Decode(msg.Data)
}

// runRequest registers a one-shot filter built from messageToSend/consume,
// using the provider's configured request timeout, and waits for its
// completion. It is the shared suspension point of every 4.3.x operation
// that sends a frame and awaits exactly one response.
func (p *Provider) runRequest(messageToSend []byte, consume func(protocol.Message) bool) error {
	if !p.manager.Connected() {
		return ErrNotConnected
	}

	filter, completion := engine.NewRequestFilter(messageToSend, consume, p.requestTimeout)
	if err := p.manager.RegisterFilter(filter); err != nil {
		return translateEngineErr(err)
	}

	err := <-completion
	return translateEngineErr(err)
}

// translateEngineErr maps an engine-level sentinel to its provider-level
// equivalent so callers only ever see the provider's own error taxonomy.
func translateEngineErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, engine.ErrNotOpen):
		return ErrNotConnected
	case errors.Is(err, engine.ErrTimeout):
		return ErrTimeout
	case errors.Is(err, engine.ErrCancelled):
		return ErrCancelled
	default:
		return ErrTransport
	}
}
