package pow

import (
	"github.com/Litecoindark/LTCD/log"
	"github.com/Litecoindark/LTCD/model/block"
	"github.com/Litecoindark/LTCD/model/blockindex"
	"github.com/Litecoindark/LTCD/model/consensus"
)

// LegacyEngine retargets once per interval from the time the previous
// interval took, bounded to a factor of four either way.
type LegacyEngine struct {
	engineBase
}

func (e *LegacyEngine) Algo() consensus.DifficultyAlgo {
	return consensus.AlgoLegacy
}

func (e *LegacyEngine) GetNextWorkRequired(indexPrev *blockindex.BlockIndex, header *block.BlockHeader) (uint32, error) {
	return e.getNextIntervalWorkRequired(indexPrev, header)
}

// ClampedEngine is the legacy retarget run over a shorter window, which
// narrows the room for timestamp manipulation. It only applies from
// ActivationHeight on.
type ClampedEngine struct {
	engineBase
	ActivationHeight int32
}

func (e *ClampedEngine) Algo() consensus.DifficultyAlgo {
	return consensus.AlgoClampedRetarget
}

func (e *ClampedEngine) GetNextWorkRequired(indexPrev *blockindex.BlockIndex, header *block.BlockHeader) (uint32, error) {
	return e.getNextIntervalWorkRequired(indexPrev, header)
}

// MinDifficultyEngine never retargets: every block may be mined at the
// proof-of-work limit.
type MinDifficultyEngine struct {
	engineBase
}

func (e *MinDifficultyEngine) Algo() consensus.DifficultyAlgo {
	return consensus.AlgoMinDifficulty
}

func (e *MinDifficultyEngine) GetNextWorkRequired(indexPrev *blockindex.BlockIndex, header *block.BlockHeader) (uint32, error) {
	return e.powLimitBits, nil
}

func (e *engineBase) getNextIntervalWorkRequired(indexPrev *blockindex.BlockIndex, header *block.BlockHeader) (uint32, error) {
	// Genesis block
	if indexPrev == nil {
		return e.powLimitBits, nil
	}

	interval := e.param.Interval()

	// Only change once per interval
	if int64(indexPrev.Height+1)%interval != 0 {
		if !e.relaxed {
			return indexPrev.Header.Bits, nil
		}

		// Special difficulty rule for testnet:
		// If the new block's timestamp is more than 2*spacing then allow
		// mining of a min-difficulty block.
		if header != nil && header.GetBlockTime() > indexPrev.GetBlockTime()+e.param.TargetSpacing*2 {
			return e.powLimitBits, nil
		}

		// Return the last non-special-min-difficulty-rules-block
		index := indexPrev
		for index.Prev != nil && int64(index.Height)%interval != 0 &&
			index.Header.Bits == e.powLimitBits {
			index = index.Prev
		}
		return index.Header.Bits, nil
	}

	// Go back by what we want to be one timespan worth of blocks. The first
	// retarget after genesis looks back interval-1 blocks.
	blocksToGoBack := interval - 1
	if int64(indexPrev.Height+1) != interval {
		blocksToGoBack = interval
	}

	indexFirst := indexPrev.GetAncestor(indexPrev.Height - int32(blocksToGoBack))
	if indexFirst == nil {
		panic("missing predecessor in the retarget window")
	}

	return e.calculateNextWorkRequired(indexPrev, indexFirst.GetBlockTime())
}

func (e *engineBase) calculateNextWorkRequired(indexPrev *blockindex.BlockIndex, firstBlockTime int64) (uint32, error) {
	timespan := e.param.TargetTimespan

	// Limit adjustment step
	actualTimespan := indexPrev.GetBlockTime() - firstBlockTime
	log.Print("pow", "debug", "  nActualTimespan = %d  before bounds", actualTimespan)
	if actualTimespan < timespan/4 {
		actualTimespan = timespan / 4
	}
	if actualTimespan > timespan*4 {
		actualTimespan = timespan * 4
	}

	// Retarget
	prevTarget, err := TargetFromCompact(indexPrev.Header.Bits)
	if err != nil {
		return 0, err
	}
	newTarget := prevTarget.Scale(actualTimespan, timespan).Clamp(e.powLimit)

	log.Print("pow", "debug", "GetNextWorkRequired RETARGET at height %d: nTargetTimespan = %d    nActualTimespan = %d",
		indexPrev.Height+1, timespan, actualTimespan)
	log.Print("pow", "debug", "Before: %08x  %s", indexPrev.Header.Bits, prevTarget)
	log.Print("pow", "debug", "After:  %08x  %s", newTarget.Compact(), newTarget)

	return newTarget.Compact(), nil
}
