package pow

import (
	"github.com/Litecoindark/LTCD/model/chainparams"
	"github.com/Litecoindark/LTCD/util"
)

// CheckProofOfWork reports whether hash satisfies the target bits and the
// target itself is within the network's limit.
func CheckProofOfWork(hash *util.Hash, bits uint32, params *chainparams.BitcoinParams) bool {
	target, err := DecodeCompact(bits)
	if err != nil || target.Sign() <= 0 || target.Cmp(params.PowLimit) > 0 {
		return false
	}

	return HashToBig(hash).Cmp(target) <= 0
}
