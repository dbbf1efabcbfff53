package lcheckpoint

import (
	"github.com/google/btree"

	"github.com/Litecoindark/LTCD/log"
	"github.com/Litecoindark/LTCD/metrics"
	"github.com/Litecoindark/LTCD/model/blockindex"
	"github.com/Litecoindark/LTCD/model/chainparams"
	"github.com/Litecoindark/LTCD/model/checkpoint"
	"github.com/Litecoindark/LTCD/util"
)

type checkpointItem checkpoint.Checkpoint

func (c checkpointItem) Less(than btree.Item) bool {
	return c.Height < than.(checkpointItem).Height
}

// Registry answers checkpoint queries for one network. It is read-only
// after New and safe for concurrent use.
type Registry struct {
	network string
	// false when the configuration disables checkpoints or the network
	// is exempt from them
	enforced bool
	data     *checkpoint.Data
	tree     *btree.BTree
}

// New builds the registry for params. enabled is the configuration switch
// for checkpoint enforcement.
func New(params *chainparams.BitcoinParams, enabled bool) *Registry {
	r := &Registry{
		network:  params.Name,
		enforced: enabled && !params.CheckpointsExempt,
		data:     params.CheckpointData,
		tree:     btree.New(32),
	}
	if r.data == nil {
		r.data = &checkpoint.Data{Version: checkpoint.Version}
	}
	for _, cp := range r.data.Checkpoints {
		r.tree.ReplaceOrInsert(checkpointItem(cp))
	}

	log.Print("checkpoint", "info", "%s checkpoints: %d loaded, enforced %v",
		r.network, r.tree.Len(), r.enforced)
	return r
}

// Enforced reports whether CheckBlock can reject anything.
func (r *Registry) Enforced() bool {
	return r.enforced
}

// Data returns the checkpoint table and its statistics.
func (r *Registry) Data() *checkpoint.Data {
	return r.data
}

// CheckBlock returns false only when height is pinned by a checkpoint and
// hash is not the pinned block.
func (r *Registry) CheckBlock(height int32, hash util.Hash) bool {
	if !r.enforced {
		return true
	}

	expect, ok := r.lookup(height)
	if !ok || expect == hash {
		return true
	}

	log.Print("checkpoint", "warn", "block %s at height %d does not match checkpoint %s",
		hash, height, expect)
	metrics.ObserveCheckpointRejection(r.network)
	return false
}

// IsCheckpoint reports whether hash is the enforced checkpoint at height.
func (r *Registry) IsCheckpoint(height int32, hash util.Hash) bool {
	if !r.enforced {
		return false
	}

	expect, ok := r.lookup(height)
	return ok && expect == hash
}

func (r *Registry) lookup(height int32) (util.Hash, bool) {
	item := r.tree.Get(checkpointItem{Height: height})
	if item == nil {
		return util.Hash{}, false
	}
	return item.(checkpointItem).Hash, true
}

// TotalBlocksEstimate returns the height of the highest checkpoint, a lower
// bound for the chain height during initial sync.
func (r *Registry) TotalBlocksEstimate() int32 {
	if !r.enforced || r.tree.Len() == 0 {
		return 0
	}

	return r.tree.Max().(checkpointItem).Height
}

// LastCheckpoint returns the highest checkpointed block known to index, or
// nil if there is none.
func (r *Registry) LastCheckpoint(index BlockIndexLookup) *blockindex.BlockIndex {
	if !r.enforced {
		return nil
	}

	var found *blockindex.BlockIndex
	r.tree.Descend(func(i btree.Item) bool {
		found = index.FindBlockIndex(i.(checkpointItem).Hash)
		return found == nil
	})

	return found
}
