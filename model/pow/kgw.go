package pow

import (
	"math"

	"github.com/Litecoindark/LTCD/log"
	"github.com/Litecoindark/LTCD/model/block"
	"github.com/Litecoindark/LTCD/model/blockindex"
	"github.com/Litecoindark/LTCD/model/consensus"
)

// KGWEngine is the Kimoto Gravity Well: it averages the targets of a window
// that grows backwards until the observed block rate leaves a band that
// narrows as the window gets heavier.
type KGWEngine struct {
	engineBase
	KGW consensus.KGWParam
}

func (e *KGWEngine) Algo() consensus.DifficultyAlgo {
	return consensus.AlgoKimotoGravityWell
}

// eventHorizonDeviation is the upper edge of the accepted rate ratio for a
// window of mass blocks; the lower edge is its inverse.
func eventHorizonDeviation(mass int64) float64 {
	return 1 + (0.7084 * math.Pow(float64(mass)/float64(144), -1.228))
}

func (e *KGWEngine) GetNextWorkRequired(indexPrev *blockindex.BlockIndex, header *block.BlockHeader) (uint32, error) {
	pastBlocksMin := e.KGW.PastBlocksMin
	pastBlocksMax := e.KGW.PastBlocksMax

	lastSolved := indexPrev
	if lastSolved == nil || lastSolved.Height == 0 || int64(lastSolved.Height) < pastBlocksMin {
		return e.powLimitBits, nil
	}

	var (
		pastBlocksMass         int64
		pastRateActualSeconds  int64
		pastRateTargetSeconds  int64
		pastDifficultyAverage  Target
		pastRateAdjustmentRate float64
	)

	reading := lastSolved
	for i := int64(1); reading != nil && reading.Height > 0; i++ {
		if pastBlocksMax > 0 && i > pastBlocksMax {
			break
		}
		pastBlocksMass++

		readingTarget, err := TargetFromCompact(reading.Header.Bits)
		if err != nil {
			return 0, err
		}
		if i == 1 {
			pastDifficultyAverage = readingTarget
		} else {
			pastDifficultyAverage = pastDifficultyAverage.Average(readingTarget, i)
		}

		pastRateActualSeconds = lastSolved.GetBlockTime() - reading.GetBlockTime()
		pastRateTargetSeconds = e.param.TargetSpacing * pastBlocksMass
		pastRateAdjustmentRate = 1
		if pastRateActualSeconds < 0 {
			pastRateActualSeconds = 0
		}
		if pastRateActualSeconds != 0 && pastRateTargetSeconds != 0 {
			pastRateAdjustmentRate = float64(pastRateTargetSeconds) / float64(pastRateActualSeconds)
		}
		deviationFast := eventHorizonDeviation(pastBlocksMass)
		deviationSlow := 1 / deviationFast

		if pastBlocksMass >= pastBlocksMin {
			if pastRateAdjustmentRate <= deviationSlow || pastRateAdjustmentRate >= deviationFast {
				break
			}
		}
		if reading.Prev == nil {
			panic("missing predecessor in the gravity well window")
		}
		reading = reading.Prev
	}

	newTarget := pastDifficultyAverage
	if pastRateActualSeconds != 0 && pastRateTargetSeconds != 0 {
		newTarget = newTarget.Scale(pastRateActualSeconds, pastRateTargetSeconds)
	}
	newTarget = newTarget.Clamp(e.powLimit)

	log.Print("pow", "debug", "KGW at height %d: mass %d, actual %d, target %d, ratio %f, bits %08x",
		lastSolved.Height+1, pastBlocksMass, pastRateActualSeconds, pastRateTargetSeconds,
		pastRateAdjustmentRate, newTarget.Compact())

	return newTarget.Compact(), nil
}
