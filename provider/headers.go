package provider

import (
	"github.com/cpacia/chialite/protocol"
)

// GetBlockHeader requests the header at height, per spec section 4.3.6. A
// reject response is a "not found", not an error: it returns (nil, nil).
func (p *Provider) GetBlockHeader(height uint64) (*BlockHeader, error) {
	frame, err := encodeFrame(protocol.MsgRequestBlockHeader, protocol.RequestBlockHeader{
		Height: height,
	})
	if err != nil {
		return nil, err
	}

	var (
		header   *BlockHeader
		rejected bool
	)
	consume := func(msg protocol.Message) bool {
		switch msg.Type {
		case protocol.MsgRespondBlockHeader:
			decoded, err := decodePayload[protocol.RespondBlockHeader](msg)
			if err != nil {
				p.logger.Warningf("provider: discarding undecodable respond_block_header: %s", err)
				return false
			}
			if decoded.HeaderBlock.RewardChainBlock.Height != height {
				return false
			}
			h := translateBlockHeader(decoded.HeaderBlock)
			header = &h
			return true

		case protocol.MsgRejectHeaderRequest:
			decoded, err := decodePayload[protocol.RejectHeaderRequest](msg)
			if err != nil {
				p.logger.Warningf("provider: discarding undecodable reject_header_request: %s", err)
				return false
			}
			if decoded.Height != height {
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
	return header, nil
}

// GetBlocksHeaders requests headers for [startHeight, endHeight], per spec
// section 4.3.7. Element i of the result corresponds to height
// startHeight+i. A reject response is a "not found": it returns (nil, nil).
func (p *Provider) GetBlocksHeaders(startHeight, endHeight uint64) ([]BlockHeader, error) {
	frame, err := encodeFrame(protocol.MsgRequestHeaderBlocks, protocol.RequestHeaderBlocks{
		StartHeight: startHeight,
		EndHeight:   endHeight,
	})
	if err != nil {
		return nil, err
	}

	var (
		headers  []BlockHeader
		rejected bool
	)
	consume := func(msg protocol.Message) bool {
		switch msg.Type {
		case protocol.MsgRespondHeaderBlocks:
			decoded, err := decodePayload[protocol.RespondHeaderBlocks](msg)
			if err != nil {
				p.logger.Warningf("provider: discarding undecodable respond_header_blocks: %s", err)
				return false
			}
			if decoded.StartHeight != startHeight || decoded.EndHeight != endHeight {
				return false
			}
			headers = make([]BlockHeader, 0, len(decoded.HeaderBlocks))
			for _, hb := range decoded.HeaderBlocks {
				headers = append(headers, translateBlockHeader(hb))
			}
			return true

		case protocol.MsgRejectHeaderBlocks:
			decoded, err := decodePayload[protocol.RejectHeaderBlocks](msg)
			if err != nil {
				p.logger.Warningf("provider: discarding undecodable reject_header_blocks: %s", err)
				return false
			}
			if decoded.StartHeight != startHeight || decoded.EndHeight != endHeight {
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
	return headers, nil
}
