package lcheckpoint

import (
	"github.com/Litecoindark/LTCD/model/blockindex"
	"github.com/Litecoindark/LTCD/util"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockIndexLookup is the hash-indexed block table owned by the chain
	// manager. chain.Chain satisfies it.
	BlockIndexLookup interface {
		FindBlockIndex(hash util.Hash) *blockindex.BlockIndex
	}
)
