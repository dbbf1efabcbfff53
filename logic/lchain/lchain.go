package lchain

import (
	"github.com/Litecoindark/LTCD/errcode"
	"github.com/Litecoindark/LTCD/log"
	"github.com/Litecoindark/LTCD/logic/lblock"
	"github.com/Litecoindark/LTCD/logic/lcheckpoint"
	"github.com/Litecoindark/LTCD/model/block"
	"github.com/Litecoindark/LTCD/model/blockindex"
	"github.com/Litecoindark/LTCD/model/chain"
	"github.com/Litecoindark/LTCD/model/chainparams"
	"github.com/Litecoindark/LTCD/model/pow"
)

// HeaderProcessor validates headers and connects them to a single active
// chain of one network.
type HeaderProcessor struct {
	params   *chainparams.BitcoinParams
	chain    *chain.Chain
	selector *pow.Selector
	registry *lcheckpoint.Registry
}

func NewHeaderProcessor(params *chainparams.BitcoinParams, checkpoints bool) (*HeaderProcessor, error) {
	selector, err := pow.NewSelector(params)
	if err != nil {
		return nil, err
	}

	return &HeaderProcessor{
		params:   params,
		chain:    chain.NewChain(),
		selector: selector,
		registry: lcheckpoint.New(params, checkpoints),
	}, nil
}

func (p *HeaderProcessor) Chain() *chain.Chain {
	return p.chain
}

func (p *HeaderProcessor) Registry() *lcheckpoint.Registry {
	return p.registry
}

// ProcessBlockHeader checks header against the tip and appends it.
// txCount is the number of transactions in the block, used for progress
// estimation only. A root header pinned by the checkpoint at height 0 is
// accepted without the difficulty and proof-of-work checks.
func (p *HeaderProcessor) ProcessBlockHeader(header *block.BlockHeader, txCount int32) (*blockindex.BlockIndex, error) {
	hash := header.GetHash()
	if p.chain.FindBlockIndex(hash) != nil {
		return nil, errcode.New(errcode.ErrorBlockAlreadyExists)
	}

	tip := p.chain.Tip()
	connects := header.HashPrevBlock.IsNull()
	if tip != nil {
		connects = header.HashPrevBlock == tip.BlockHash
	}
	if !connects {
		if err := p.checkMinWork(header); err != nil {
			return nil, err
		}
		log.Print("chain", "debug", "header %s does not connect to the tip", hash)
		return nil, errcode.New(errcode.ErrorBlockHeaderNoParent)
	}

	if tip == nil && p.registry.IsCheckpoint(0, hash) {
		log.Print("chain", "info", "genesis %s pinned by checkpoint", hash)
	} else if err := lblock.ContextualCheckBlockHeader(header, tip, p.selector, p.registry); err != nil {
		return nil, err
	}

	index, err := p.chain.AppendHeader(header, hash, txCount)
	if err != nil {
		return nil, err
	}

	progress := ReportVerificationProgress(p.params, index)
	log.Print("chain", "info", "new tip %s height=%d bits=%08x progress=%.6f",
		hash, index.Height, index.GetBits(), progress)
	return index, nil
}

// checkMinWork rejects a header off the active chain whose bits are easier
// than the difficulty could have fallen to since the last checkpoint.
func (p *HeaderProcessor) checkMinWork(header *block.BlockHeader) error {
	if !p.registry.Enforced() {
		return nil
	}
	last := p.registry.LastCheckpoint(p.chain)
	if last == nil {
		return nil
	}

	deltaTime := header.GetBlockTime() - last.GetBlockTime()
	if deltaTime < 0 {
		log.Error("ProcessBlockHeader: block with timestamp before last checkpoint at %d", last.Height)
		return errcode.NewWithReject(errcode.ErrorCheckpointTimestamp, errcode.RejectCheckpoint)
	}

	requiredBits, err := p.selector.MinWorkAt(last.Height, last.GetBits(), deltaTime)
	if err != nil {
		return err
	}
	required, err := pow.DecodeCompact(requiredBits)
	if err != nil {
		return err
	}
	claimed, err := pow.DecodeCompact(header.Bits)
	if err != nil || claimed.Cmp(required) > 0 {
		log.Error("ProcessBlockHeader: block with too little proof-of-work: %08x, minimum %08x",
			header.Bits, requiredBits)
		return errcode.NewWithReject(errcode.ErrorMinWork, errcode.RejectInvalid)
	}
	return nil
}
