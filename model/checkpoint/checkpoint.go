package checkpoint

import (
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/Litecoindark/LTCD/errcode"
	"github.com/Litecoindark/LTCD/util"
)

// Version is the only checkpoint document layout this package understands.
const Version = 1

type Checkpoint struct {
	Height int32
	Hash   util.Hash
}

// Data is a network's checkpoint table together with the chain statistics
// taken at the last checkpoint.
type Data struct {
	Version     int
	Checkpoints []Checkpoint

	// UNIX timestamp of the last checkpoint block
	TimeLastCheckpoint int64
	// total number of transactions between genesis and the last checkpoint
	TransactionsLastCheckpoint int64
	// estimated number of transactions per day after the checkpoint
	TransactionsPerDay float64
}

type document struct {
	Version     int `yaml:"version"`
	Checkpoints []struct {
		Height int32  `yaml:"height"`
		Hash   string `yaml:"hash"`
	} `yaml:"checkpoints"`
	Stats struct {
		Time         int64   `yaml:"time"`
		Transactions int64   `yaml:"transactions"`
		TxPerDay     float64 `yaml:"txPerDay"`
	} `yaml:"stats"`
}

// Parse decodes a checkpoint table document. The returned checkpoints are
// sorted by ascending height.
func Parse(raw []byte) (*Data, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "decode checkpoint document")
	}
	if doc.Version != Version {
		return nil, errors.Wrapf(errcode.New(errcode.ErrCheckpointVersion), "version %d", doc.Version)
	}

	data := &Data{
		Version:                    doc.Version,
		Checkpoints:                make([]Checkpoint, 0, len(doc.Checkpoints)),
		TimeLastCheckpoint:         doc.Stats.Time,
		TransactionsLastCheckpoint: doc.Stats.Transactions,
		TransactionsPerDay:         doc.Stats.TxPerDay,
	}

	seen := make(map[int32]struct{}, len(doc.Checkpoints))
	for _, cp := range doc.Checkpoints {
		if cp.Height < 0 {
			return nil, errors.Wrapf(errcode.New(errcode.ErrCheckpointHeight), "height %d", cp.Height)
		}
		if _, ok := seen[cp.Height]; ok {
			return nil, errors.Wrapf(errcode.New(errcode.ErrCheckpointDuplicate), "height %d", cp.Height)
		}
		seen[cp.Height] = struct{}{}

		if len(cp.Hash) != util.MaxHashStringSize {
			return nil, errors.Wrapf(errcode.New(errcode.ErrCheckpointHash), "height %d: %q", cp.Height, cp.Hash)
		}
		hash, err := util.GetHashFromStr(cp.Hash)
		if err != nil {
			return nil, errors.Wrapf(errcode.New(errcode.ErrCheckpointHash), "height %d: %v", cp.Height, err)
		}
		data.Checkpoints = append(data.Checkpoints, Checkpoint{Height: cp.Height, Hash: *hash})
	}

	sort.Slice(data.Checkpoints, func(i, j int) bool {
		return data.Checkpoints[i].Height < data.Checkpoints[j].Height
	})

	return data, nil
}

// MustParse is like Parse but panics on error. It is meant for tables
// compiled into the binary.
func MustParse(raw []byte) *Data {
	data, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return data
}
