package provider

import (
	"github.com/cpacia/chialite/protocol"
)

// GetCoinChildren requests the children of coinID, per spec section 4.3.5.
//
// Any respond_children response is accepted. When its coin-state list is
// empty or its first entry's parent equals coinID, the translated list is
// returned; when the first entry's parent does not match coinID, an empty
// list is returned, the same as for "no children". See DESIGN.md.
func (p *Provider) GetCoinChildren(coinID [32]byte) ([]CoinState, error) {
	frame, err := encodeFrame(protocol.MsgRequestChildren, protocol.RequestChildren{
		CoinName: coinID,
	})
	if err != nil {
		return nil, err
	}

	var children []CoinState
	consume := func(msg protocol.Message) bool {
		if msg.Type != protocol.MsgRespondChildren {
			return false
		}
		decoded, err := decodePayload[protocol.RespondChildren](msg)
		if err != nil {
			p.logger.Warningf("provider: discarding undecodable respond_children: %s", err)
			return false
		}
		if len(decoded.CoinStates) > 0 && decoded.CoinStates[0].ParentCoinInfo != coinID {
			children = []CoinState{}
			return true
		}

		children = translateCoinStates(decoded.CoinStates)
		return true
	}

	if err := p.runRequest(frame, consume); err != nil {
		return nil, err
	}
	if children == nil {
		children = []CoinState{}
	}
	return children, nil
}
