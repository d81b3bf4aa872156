package provider

import (
	"github.com/cpacia/chialite/engine"
	"github.com/cpacia/chialite/protocol"
)

// subscriptionBufSize bounds the channel a subscription predicate pushes
// onto, so the actor never blocks delivering to a slow consumer. Grounded
// on base.BufSize's default of 16 in the teacher's subscription plumbing.
const subscriptionBufSize = 16

// SubscribeToPuzzleHashUpdates installs a persistent filter (spec section
// 4.3.3): it registers interest in puzzleHash, and on every subsequent
// respond_to_ph_update naming puzzleHash it pushes the matching coin
// states to the returned channel, translated to the public CoinState type.
// Calling this twice with the same puzzleHash installs two independent
// subscribers, each of which receives every matching frame, in order.
func (p *Provider) SubscribeToPuzzleHashUpdates(puzzleHash [32]byte, minHeight uint64) (<-chan []CoinState, error) {
	if !p.manager.Connected() {
		return nil, ErrNotConnected
	}

	frame, err := encodeFrame(protocol.MsgRegisterInterestInPuzzleHash, protocol.RegisterInterestInPuzzleHash{
		PuzzleHash: puzzleHash,
		MinHeight:  minHeight,
	})
	if err != nil {
		return nil, err
	}

	out := make(chan []CoinState, subscriptionBufSize)
	consume := func(msg protocol.Message) bool {
		if msg.Type != protocol.MsgRespondToPhUpdate {
			return false
		}
		decoded, err := decodePayload[protocol.RespondToPHUpdate](msg)
		if err != nil {
			p.logger.Warningf("provider: discarding undecodable respond_to_ph_update: %s", err)
			return false
		}
		if !containsPuzzleHash(decoded.PuzzleHashes, puzzleHash) {
			return false
		}

		matched := make([]CoinState, 0, len(decoded.CoinStates))
		for _, cs := range decoded.CoinStates {
			if cs.PuzzleHash == puzzleHash {
				matched = append(matched, translateCoinState(cs))
			}
		}

		select {
		case out <- matched:
		default:
			p.logger.Warningf("provider: dropping puzzle-hash subscription update, consumer too slow")
		}
		return true
	}

	filter := engine.NewSubscriptionFilter(frame, consume)
	if err := p.manager.RegisterFilter(filter); err != nil {
		return nil, translateEngineErr(err)
	}
	return out, nil
}

// SubscribeToCoinUpdates installs a persistent filter for a single coin
// (spec section 4.3.3). Registration happens on the coin's puzzle hash,
// since that is the node's only subscription primitive; the predicate then
// narrows delivered updates to the one coin whose id equals coinID,
// computed the same way as Coin.ID.
func (p *Provider) SubscribeToCoinUpdates(puzzleHash [32]byte, coinID [32]byte, minHeight uint64) (<-chan CoinState, error) {
	if !p.manager.Connected() {
		return nil, ErrNotConnected
	}

	frame, err := encodeFrame(protocol.MsgRegisterInterestInPuzzleHash, protocol.RegisterInterestInPuzzleHash{
		PuzzleHash: puzzleHash,
		MinHeight:  minHeight,
	})
	if err != nil {
		return nil, err
	}

	out := make(chan CoinState, subscriptionBufSize)
	consume := func(msg protocol.Message) bool {
		if msg.Type != protocol.MsgRespondToPhUpdate {
			return false
		}
		decoded, err := decodePayload[protocol.RespondToPHUpdate](msg)
		if err != nil {
			p.logger.Warningf("provider: discarding undecodable respond_to_ph_update: %s", err)
			return false
		}

		matched := false
		for _, cs := range decoded.CoinStates {
			state := translateCoinState(cs)
			if state.Coin.ID() != coinID {
				continue
			}
			matched = true
			select {
			case out <- state:
			default:
				p.logger.Warningf("provider: dropping coin subscription update, consumer too slow")
			}
		}
		return matched
	}

	filter := engine.NewSubscriptionFilter(frame, consume)
	if err := p.manager.RegisterFilter(filter); err != nil {
		return nil, translateEngineErr(err)
	}
	return out, nil
}
