package pow

import (
	"math/big"

	"github.com/Litecoindark/LTCD/errcode"
	"github.com/Litecoindark/LTCD/model/block"
	"github.com/Litecoindark/LTCD/model/blockindex"
	"github.com/Litecoindark/LTCD/model/chainparams"
	"github.com/Litecoindark/LTCD/model/consensus"
)

// Engine computes the compact target a block must meet. The set of engines
// is closed: only this package can implement it.
type Engine interface {
	// GetNextWorkRequired returns the bits required of header, which extends
	// indexPrev. A nil indexPrev means header is the genesis block. A nil
	// header has no timestamp, so the relaxed min-difficulty rule is skipped.
	GetNextWorkRequired(indexPrev *blockindex.BlockIndex, header *block.BlockHeader) (uint32, error)
	// ComputeMinWork returns the easiest target reachable from base after
	// elapsed seconds.
	ComputeMinWork(base uint32, elapsed int64) (uint32, error)
	Algo() consensus.DifficultyAlgo
	Param() consensus.DifficultyParam

	sealed()
}

// NewEngine builds the engine for one row of a difficulty schedule.
func NewEngine(params *chainparams.BitcoinParams, activation consensus.Activation) (Engine, error) {
	if !activation.Algo.IsValid() {
		return nil, errcode.New(errcode.ErrUnknownAlgo)
	}
	if activation.Algo != consensus.AlgoMinDifficulty && activation.Param.Interval() <= 0 {
		return nil, errcode.New(errcode.ErrBadSchedule)
	}

	base := newEngineBase(params, activation.Param)
	switch activation.Algo {
	case consensus.AlgoLegacy:
		return &LegacyEngine{engineBase: base}, nil
	case consensus.AlgoClampedRetarget:
		return &ClampedEngine{engineBase: base, ActivationHeight: activation.Height}, nil
	case consensus.AlgoKimotoGravityWell:
		return &KGWEngine{engineBase: base, KGW: activation.KGW}, nil
	default:
		return &MinDifficultyEngine{engineBase: base}, nil
	}
}

type engineBase struct {
	param        consensus.DifficultyParam
	powLimit     *big.Int
	powLimitBits uint32
	// min-difficulty blocks are allowed after a 2*spacing gap
	relaxed bool
}

func newEngineBase(params *chainparams.BitcoinParams, param consensus.DifficultyParam) engineBase {
	return engineBase{
		param:        param,
		powLimit:     params.PowLimit,
		powLimitBits: BigToCompact(params.PowLimit),
		relaxed:      params.FPowAllowMinDifficultyBlocks,
	}
}

func (e *engineBase) Param() consensus.DifficultyParam {
	return e.param
}

func (e *engineBase) sealed() {}

// ComputeMinWork returns the minimum work required (the easiest target) for
// a block built on base after elapsed seconds, used to bound how far a
// chain can fall from a known checkpoint.
func (e *engineBase) ComputeMinWork(base uint32, elapsed int64) (uint32, error) {
	// Testnet has min-difficulty blocks after 2*spacing between blocks.
	if e.relaxed && elapsed > e.param.TargetSpacing*2 {
		return e.powLimitBits, nil
	}

	result, err := TargetFromCompact(base)
	if err != nil {
		return 0, err
	}
	limit := NewTarget(e.powLimit)
	for elapsed > 0 && result.Sign() > 0 && result.Cmp(limit) < 0 && e.param.TargetTimespan > 0 {
		// Maximum 400% adjustment...
		result = result.Mul(4)
		// ... in best-case exactly 4-times-normal target time
		elapsed -= e.param.TargetTimespan * 4
	}

	return result.Clamp(e.powLimit).Compact(), nil
}
