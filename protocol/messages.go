package protocol

// CoinStateWire is the wire-level shape of a coin's current state, as
// embedded in respond_to_ph_update / respond_removals / respond_additions /
// respond_children payloads.
type CoinStateWire struct {
	ParentCoinInfo [32]byte `cbor:"parent_coin_info"`
	PuzzleHash     [32]byte `cbor:"puzzle_hash"`
	Amount         []byte   `cbor:"amount"` // canonical minimal big-endian
	SpentHeight    *uint64  `cbor:"spent_height,omitempty"`
	CreatedHeight  *uint64  `cbor:"created_height,omitempty"`
}

// NewPeakWallet is the payload of MsgNewPeakWallet.
type NewPeakWallet struct {
	Height               uint64   `cbor:"height"`
	HeaderHash           [32]byte `cbor:"header_hash"`
	PrevHeight           uint64   `cbor:"prev_height"`
	PrevHeaderHash       [32]byte `cbor:"prev_header_hash"`
	FirstCoinSpentHeight *uint64  `cbor:"-"`
}

// RegisterInterestInPuzzleHash is the payload of MsgRegisterInterestInPuzzleHash.
type RegisterInterestInPuzzleHash struct {
	PuzzleHash [32]byte `cbor:"puzzle_hash"`
	MinHeight  uint64   `cbor:"min_height"`
}

// RespondToPHUpdate is the payload of MsgRespondToPhUpdate.
type RespondToPHUpdate struct {
	PuzzleHashes [][32]byte      `cbor:"puzzle_hashes"`
	CoinStates   []CoinStateWire `cbor:"coin_states"`
}

// RequestPuzzleSolution is the payload of MsgRequestPuzzleSolution.
type RequestPuzzleSolution struct {
	CoinName [32]byte `cbor:"coin_name"`
	Height   uint64   `cbor:"height"`
}

// PuzzleSolutionResponseWire is the embedded solution response object.
type PuzzleSolutionResponseWire struct {
	CoinName     [32]byte `cbor:"coin_name"`
	Height       uint64   `cbor:"height"`
	PuzzleReveal []byte   `cbor:"puzzle_reveal"`
	Solution     []byte   `cbor:"solution"`
}

// RespondPuzzleSolution is the payload of MsgRespondPuzzleSolution.
type RespondPuzzleSolution struct {
	Response PuzzleSolutionResponseWire `cbor:"response"`
}

// RejectPuzzleSolution is the payload of MsgRejectPuzzleSolution.
type RejectPuzzleSolution struct {
	CoinName [32]byte `cbor:"coin_name"`
	Height   uint64   `cbor:"height"`
}

// RequestChildren is the payload of MsgRequestChildren.
type RequestChildren struct {
	CoinName [32]byte `cbor:"coin_name"`
}

// RespondChildren is the payload of MsgRespondChildren.
type RespondChildren struct {
	CoinStates []CoinStateWire `cbor:"coin_states"`
}

// RequestBlockHeader is the payload of MsgRequestBlockHeader.
type RequestBlockHeader struct {
	Height uint64 `cbor:"height"`
}

// RewardChainBlockWire carries the subset of reward-chain-block fields this
// adapter surfaces.
type RewardChainBlockWire struct {
	Height uint64 `cbor:"height"`
}

// BlockHeaderWire is the embedded header object of respond_block_header /
// respond_header_blocks.
type BlockHeaderWire struct {
	RewardChainBlock RewardChainBlockWire `cbor:"reward_chain_block"`
	HeaderHash       [32]byte             `cbor:"header_hash"`
	PrevHeaderHash   [32]byte             `cbor:"prev_header_hash"`
}

// RespondBlockHeader is the payload of MsgRespondBlockHeader.
type RespondBlockHeader struct {
	HeaderBlock BlockHeaderWire `cbor:"header_block"`
}

// RejectHeaderRequest is the payload of MsgRejectHeaderRequest.
type RejectHeaderRequest struct {
	Height uint64 `cbor:"height"`
}

// RequestHeaderBlocks is the payload of MsgRequestHeaderBlocks.
type RequestHeaderBlocks struct {
	StartHeight uint64 `cbor:"start_height"`
	EndHeight   uint64 `cbor:"end_height"`
}

// RespondHeaderBlocks is the payload of MsgRespondHeaderBlocks.
type RespondHeaderBlocks struct {
	StartHeight  uint64            `cbor:"start_height"`
	EndHeight    uint64            `cbor:"end_height"`
	HeaderBlocks []BlockHeaderWire `cbor:"header_blocks"`
}

// RejectHeaderBlocks is the payload of MsgRejectHeaderBlocks.
type RejectHeaderBlocks struct {
	StartHeight uint64 `cbor:"start_height"`
	EndHeight   uint64 `cbor:"end_height"`
}

// PuzzleHashOrCoinKey identifies one entry of a removals/additions request:
// either a coin id or a puzzle hash, both 32 bytes on the wire.
type PuzzleHashOrCoinKey [32]byte

// RequestRemovals is the payload of MsgRequestRemovals.
type RequestRemovals struct {
	Height     uint64                `cbor:"height"`
	HeaderHash [32]byte              `cbor:"header_hash"`
	CoinNames  []PuzzleHashOrCoinKey `cbor:"coin_names,omitempty"`
}

// CoinAssociationEntryWire is one (key -> merkle hash, coin-or-coins) entry
// of a removals/additions response, keyed by coin id (removals) or puzzle
// hash (additions).
type CoinAssociationEntryWire struct {
	Key        PuzzleHashOrCoinKey `cbor:"key"`
	MerkleHash [32]byte            `cbor:"merkle_hash"`
	Coins      []CoinStateWire     `cbor:"coins,omitempty"`
}

// RespondRemovals is the payload of MsgRespondRemovals.
type RespondRemovals struct {
	Height     uint64                     `cbor:"height"`
	HeaderHash [32]byte                   `cbor:"header_hash"`
	Removals   []CoinAssociationEntryWire `cbor:"removals"`
}

// RejectRemovalsRequest is the payload of MsgRejectRemovalsRequest.
type RejectRemovalsRequest struct {
	Height     uint64   `cbor:"height"`
	HeaderHash [32]byte `cbor:"header_hash"`
}

// RequestAdditions is the payload of MsgRequestAdditions.
type RequestAdditions struct {
	Height       uint64                `cbor:"height"`
	HeaderHash   [32]byte              `cbor:"header_hash"`
	PuzzleHashes []PuzzleHashOrCoinKey `cbor:"puzzle_hashes,omitempty"`
}

// RespondAdditions is the payload of MsgRespondAdditions.
type RespondAdditions struct {
	Height     uint64                     `cbor:"height"`
	HeaderHash [32]byte                   `cbor:"header_hash"`
	Additions  []CoinAssociationEntryWire `cbor:"additions"`
}

// RejectAdditionsRequest is the payload of MsgRejectAdditionsRequest.
type RejectAdditionsRequest struct {
	Height     uint64   `cbor:"height"`
	HeaderHash [32]byte `cbor:"header_hash"`
}
