package blockindex

import (
	"fmt"

	"github.com/Litecoindark/LTCD/model/block"
	"github.com/Litecoindark/LTCD/util"
)

// BlockIndex is the read-only view of an accepted header that the
// difficulty engines and the checkpoint registry walk. Entries are created
// by the chain arena and never mutated once linked.
type BlockIndex struct {
	Header block.BlockHeader
	// hash of the block
	BlockHash util.Hash
	// index of the predecessor of this block, nil only at genesis
	Prev *BlockIndex
	// index of some further predecessor of this block
	Skip *BlockIndex
	// height of the entry in the chain. The genesis block has height 0
	Height int32
	// Number of transactions in this block.
	TxCount int32
	// Number of transactions in the chain up to and including this block.
	ChainTxCount int64
}

func NewBlockIndex(blkHeader *block.BlockHeader) *BlockIndex {
	return &BlockIndex{Header: *blkHeader}
}

func (bIndex *BlockIndex) GetBlockHash() *util.Hash {
	return &bIndex.BlockHash
}

func (bIndex *BlockIndex) GetBlockHeader() *block.BlockHeader {
	return &bIndex.Header
}

func (bIndex *BlockIndex) GetBlockTime() int64 {
	return int64(bIndex.Header.Time)
}

func (bIndex *BlockIndex) GetBits() uint32 {
	return bIndex.Header.Bits
}

func (bIndex *BlockIndex) BuildSkip() {
	if bIndex.Prev != nil {
		bIndex.Skip = bIndex.Prev.GetAncestor(getSkipHeight(bIndex.Height))
	}
}

// Turn the lowest '1' bit in the binary representation of a number into a '0'.
func invertLowestOne(n int32) int32 {
	return n & (n - 1)
}

// getSkipHeight computes what height to jump back to with the Skip pointer.
func getSkipHeight(height int32) int32 {
	if height < 2 {
		return 0
	}

	// Any number strictly lower than height is acceptable, this one keeps
	// the walk short (max 110 steps to go back up to 2**18 blocks).
	if (height & 1) > 0 {
		return invertLowestOne(invertLowestOne(height-1)) + 1
	}
	return invertLowestOne(height)
}

// GetAncestor efficiently finds an ancestor of this block.
func (bIndex *BlockIndex) GetAncestor(height int32) *BlockIndex {
	if height > bIndex.Height || height < 0 {
		return nil
	}
	indexWalk := bIndex
	heightWalk := bIndex.Height
	for heightWalk > height {
		heightSkip := getSkipHeight(heightWalk)
		heightSkipPrev := getSkipHeight(heightWalk - 1)
		if indexWalk.Skip != nil && (heightSkip == height ||
			(heightSkip > height && !(heightSkipPrev < heightSkip-2 && heightSkipPrev >= height))) {
			// Only follow skip if prev->skip isn't better than skip->prev.
			indexWalk = indexWalk.Skip
			heightWalk = heightSkip
		} else {
			if indexWalk.Prev == nil {
				panic("The blockIndex pointer should not be nil")
			}
			indexWalk = indexWalk.Prev
			heightWalk--
		}
	}

	return indexWalk
}

func (bIndex *BlockIndex) String() string {
	return fmt.Sprintf("BlockIndex(pprev=%p, height=%d, bits=%08x, time=%d, hashBlock=%s)",
		bIndex.Prev, bIndex.Height, bIndex.Header.Bits, bIndex.Header.Time, bIndex.BlockHash)
}
