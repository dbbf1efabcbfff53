package lblock

import (
	"github.com/Litecoindark/LTCD/errcode"
	"github.com/Litecoindark/LTCD/log"
	"github.com/Litecoindark/LTCD/logic/lcheckpoint"
	"github.com/Litecoindark/LTCD/model/block"
	"github.com/Litecoindark/LTCD/model/blockindex"
	"github.com/Litecoindark/LTCD/model/pow"
)

// CheckBlockHeader checks that the header's scrypt hash meets the target
// its bits claim.
func CheckBlockHeader(header *block.BlockHeader, selector *pow.Selector) error {
	powHash, err := header.GetPowHash()
	if err != nil {
		log.Error("CheckBlockHeader GetPowHash err: %v", err)
		return errcode.NewWithReject(errcode.ErrorPowCheckErr, errcode.RejectInvalid)
	}
	if !pow.CheckProofOfWork(&powHash, header.Bits, selector.Params()) {
		log.Error("CheckBlockHeader CheckProofOfWork err")
		return errcode.NewWithReject(errcode.ErrorPowCheckErr, errcode.RejectInvalid)
	}
	return nil
}

// ContextualCheckBlockHeader checks a header that extends preIndex against
// the consensus rules that depend on its position in the chain: the
// required difficulty and the checkpoints.
func ContextualCheckBlockHeader(header *block.BlockHeader, preIndex *blockindex.BlockIndex,
	selector *pow.Selector, registry *lcheckpoint.Registry) error {
	height := int32(0)
	if preIndex != nil {
		height = preIndex.Height + 1
	}

	required, err := selector.RequiredTarget(preIndex, header)
	if err != nil {
		return err
	}
	if header.Bits != required {
		log.Error("ContextualCheckBlockHeader: bad-diffbits at height %d: got %08x, want %08x",
			height, header.Bits, required)
		return errcode.NewWithReject(errcode.ErrorBadDiffBits, errcode.RejectInvalid)
	}

	if !registry.CheckBlock(height, header.GetHash()) {
		log.Error("ContextualCheckBlockHeader: rejected by checkpoint lock-in at %d", height)
		return errcode.NewWithReject(errcode.ErrorCheckpointMismatch, errcode.RejectCheckpoint)
	}

	return CheckBlockHeader(header, selector)
}
