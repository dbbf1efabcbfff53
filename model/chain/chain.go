package chain

import (
	"sync"

	"github.com/Litecoindark/LTCD/errcode"
	"github.com/Litecoindark/LTCD/log"
	"github.com/Litecoindark/LTCD/model/block"
	"github.com/Litecoindark/LTCD/model/blockindex"
	"github.com/Litecoindark/LTCD/util"
)

// Chain is an append-only, height-ordered arena of block indexes. Every
// entry links to the one below it, so the links are acyclic and rooted at
// the first appended header by construction.
type Chain struct {
	lock     sync.RWMutex
	active   []*blockindex.BlockIndex
	indexMap map[util.Hash]*blockindex.BlockIndex // selfHash :*index
}

func NewChain() *Chain {
	return &Chain{
		indexMap: make(map[util.Hash]*blockindex.BlockIndex),
	}
}

// AppendHeader links header on top of the current tip. The first header
// appended becomes genesis and must not reference a parent.
func (c *Chain) AppendHeader(header *block.BlockHeader, hash util.Hash, txCount int32) (*blockindex.BlockIndex, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if _, ok := c.indexMap[hash]; ok {
		log.Print("chain", "debug", "header %s already in chain", hash)
		return nil, errcode.New(errcode.ErrorBlockAlreadyExists)
	}

	bi := blockindex.NewBlockIndex(header)
	bi.BlockHash = hash
	bi.TxCount = txCount

	tip := c.tip()
	if tip == nil {
		if !header.HashPrevBlock.IsNull() {
			return nil, errcode.New(errcode.ErrorBlockHeaderNoParent)
		}
		bi.ChainTxCount = int64(txCount)
	} else {
		if header.HashPrevBlock != tip.BlockHash {
			log.Print("chain", "debug", "header %s does not extend tip %s", hash, tip.BlockHash)
			return nil, errcode.New(errcode.ErrorBlockHeaderNoParent)
		}
		bi.Prev = tip
		bi.Height = tip.Height + 1
		bi.ChainTxCount = tip.ChainTxCount + int64(txCount)
		bi.BuildSkip()
	}

	c.active = append(c.active, bi)
	c.indexMap[hash] = bi
	return bi, nil
}

// Genesis returns the index entry for the genesis block of this chain,
// or nil if none.
func (c *Chain) Genesis() *blockindex.BlockIndex {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if len(c.active) > 0 {
		return c.active[0]
	}

	return nil
}

// Tip returns the index entry for the tip of this chain, or nil if none.
func (c *Chain) Tip() *blockindex.BlockIndex {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.tip()
}

func (c *Chain) tip() *blockindex.BlockIndex {
	if len(c.active) > 0 {
		return c.active[len(c.active)-1]
	}

	return nil
}

// GetIndex returns the index entry at a particular height in this chain,
// or nil if no such height exists.
func (c *Chain) GetIndex(height int32) *blockindex.BlockIndex {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if height < 0 || int(height) >= len(c.active) {
		return nil
	}

	return c.active[height]
}

// Height returns the maximal height in the chain, -1 when it is empty.
func (c *Chain) Height() int32 {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return int32(len(c.active)) - 1
}

// FindBlockIndex finds a block index by its hash.
func (c *Chain) FindBlockIndex(hash util.Hash) *blockindex.BlockIndex {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if bi, ok := c.indexMap[hash]; ok {
		return bi
	}

	return nil
}
