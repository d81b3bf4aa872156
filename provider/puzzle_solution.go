package provider

import (
	"github.com/cpacia/chialite/protocol"
)

// GetPuzzleSolutionParams names the coin and height to query, per spec
// section 4.3.4.
type GetPuzzleSolutionParams struct {
	CoinID [32]byte
	Height uint64
}

// GetPuzzleSolution requests the puzzle reveal and solution that spent
// coinID at height, per spec section 4.3.4. A reject response is a
// "not found", not an error: it returns (nil, nil).
func (p *Provider) GetPuzzleSolution(params GetPuzzleSolutionParams) (*PuzzleSolution, error) {
	frame, err := encodeFrame(protocol.MsgRequestPuzzleSolution, protocol.RequestPuzzleSolution{
		CoinName: params.CoinID,
		Height:   params.Height,
	})
	if err != nil {
		return nil, err
	}

	var (
		solution *PuzzleSolution
		rejected bool
	)
	consume := func(msg protocol.Message) bool {
		switch msg.Type {
		case protocol.MsgRespondPuzzleSolution:
			decoded, err := decodePayload[protocol.RespondPuzzleSolution](msg)
			if err != nil {
				p.logger.Warningf("provider: discarding undecodable respond_puzzle_solution: %s", err)
				return false
			}
			if decoded.Response.CoinName != params.CoinID || decoded.Response.Height != params.Height {
				return false
			}
			solution = &PuzzleSolution{
				CoinName:     decoded.Response.CoinName,
				Height:       decoded.Response.Height,
				PuzzleReveal: decoded.Response.PuzzleReveal,
				Solution:     decoded.Response.Solution,
			}
			return true

		case protocol.MsgRejectPuzzleSolution:
			decoded, err := decodePayload[protocol.RejectPuzzleSolution](msg)
			if err != nil {
				p.logger.Warningf("provider: discarding undecodable reject_puzzle_solution: %s", err)
				return false
			}
			if decoded.CoinName != params.CoinID || decoded.Height != params.Height {
				return false
			}
			rejected = true
			return true

		default:
			return false
		}
	}

	if err := p.runRequest(frame, consume); err != nil {
		return nil, err
	}
	if rejected {
		return nil, nil
	}
	return solution, nil
}
