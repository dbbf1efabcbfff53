package lchain

import (
	"github.com/Litecoindark/LTCD/metrics"
	"github.com/Litecoindark/LTCD/model/blockindex"
	"github.com/Litecoindark/LTCD/model/chainparams"
	"github.com/Litecoindark/LTCD/model/checkpoint"
	"github.com/Litecoindark/LTCD/util"
)

// SigcheckVerificationFactor is how much more a transaction after the last
// checkpoint costs to verify than one before it.
const SigcheckVerificationFactor = 5.0

const secondsPerDay = 86400.0

// GuessVerificationProgress estimates how far initial sync has got once
// index is verified, as a fraction in [0, 1].
func GuessVerificationProgress(data *checkpoint.Data, index *blockindex.BlockIndex) float64 {
	return GuessVerificationProgressAt(data, index, util.GetTime())
}

// ReportVerificationProgress estimates progress against the network's
// checkpoint statistics and publishes it as a gauge.
func ReportVerificationProgress(params *chainparams.BitcoinParams, index *blockindex.BlockIndex) float64 {
	progress := GuessVerificationProgress(params.CheckpointData, index)
	metrics.SetVerificationProgress(params.Name, progress)
	return progress
}

// GuessVerificationProgressAt is GuessVerificationProgress with an explicit
// current time.
//
// Work is defined as 1.0 per transaction before the last checkpoint, and
// SigcheckVerificationFactor per transaction after.
func GuessVerificationProgressAt(data *checkpoint.Data, index *blockindex.BlockIndex, now int64) float64 {
	if index == nil || data == nil {
		return 0.0
	}

	var workBefore, workAfter float64
	lastTx := data.TransactionsLastCheckpoint

	if index.ChainTxCount <= lastTx {
		cheapBefore := float64(index.ChainTxCount)
		cheapAfter := float64(lastTx - index.ChainTxCount)
		expensiveAfter := float64(now-data.TimeLastCheckpoint) / secondsPerDay * data.TransactionsPerDay
		workBefore = cheapBefore
		workAfter = cheapAfter + expensiveAfter*SigcheckVerificationFactor
	} else {
		cheapBefore := float64(lastTx)
		expensiveBefore := float64(index.ChainTxCount - lastTx)
		expensiveAfter := float64(now-index.GetBlockTime()) / secondsPerDay * data.TransactionsPerDay
		workBefore = cheapBefore + expensiveBefore*SigcheckVerificationFactor
		workAfter = expensiveAfter * SigcheckVerificationFactor
	}

	total := workBefore + workAfter
	if total <= 0 {
		return 0.0
	}

	progress := workBefore / total
	switch {
	case progress < 0:
		return 0.0
	case progress > 1:
		return 1.0
	}
	return progress
}
