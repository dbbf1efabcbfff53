package consensus

import "fmt"

// DifficultyAlgo names one of the retargeting algorithms a network can
// activate. The set is closed: new rules need a new constant and a new
// engine, not configuration.
type DifficultyAlgo int

const (
	AlgoLegacy DifficultyAlgo = iota
	AlgoMinDifficulty
	AlgoClampedRetarget
	AlgoKimotoGravityWell
)

var algoNames = map[DifficultyAlgo]string{
	AlgoLegacy:            "legacy",
	AlgoMinDifficulty:     "mindifficulty",
	AlgoClampedRetarget:   "clampedretarget",
	AlgoKimotoGravityWell: "kgw",
}

func (a DifficultyAlgo) String() string {
	if s, ok := algoNames[a]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%d)", int(a))
}

func (a DifficultyAlgo) IsValid() bool {
	_, ok := algoNames[a]
	return ok
}

// DifficultyParam is the timing triple of a retargeting window, in seconds.
type DifficultyParam struct {
	TargetTimespan int64
	TargetSpacing  int64
}

// Interval is the number of blocks between two retargets.
func (pm DifficultyParam) Interval() int64 {
	if pm.TargetSpacing == 0 {
		return 0
	}
	return pm.TargetTimespan / pm.TargetSpacing
}

// KGWParam bounds the adaptive window of the Kimoto Gravity Well.
// PastBlocksMax of 0 means no upper bound.
type KGWParam struct {
	PastBlocksMin int64
	PastBlocksMax int64
}

// Activation is one row of a network's difficulty schedule: from Height
// on, Algo decides the next target with the given parameters.
type Activation struct {
	Height int32
	Algo   DifficultyAlgo
	Param  DifficultyParam
	KGW    KGWParam
}
