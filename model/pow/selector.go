package pow

import (
	"sort"

	"github.com/Litecoindark/LTCD/errcode"
	"github.com/Litecoindark/LTCD/log"
	"github.com/Litecoindark/LTCD/metrics"
	"github.com/Litecoindark/LTCD/model/block"
	"github.com/Litecoindark/LTCD/model/blockindex"
	"github.com/Litecoindark/LTCD/model/chainparams"
)

// Selector maps a block height to the difficulty engine in force at that
// height. It holds no mutable state after construction.
type Selector struct {
	params  *chainparams.BitcoinParams
	heights []int32
	engines []Engine
}

// NewSelector builds one engine per row of the network's difficulty
// schedule. Rows must start at height 0 and be strictly ascending.
func NewSelector(params *chainparams.BitcoinParams) (*Selector, error) {
	schedule := params.DifficultySchedule
	if len(schedule) == 0 || schedule[0].Height != 0 {
		return nil, errcode.New(errcode.ErrBadSchedule)
	}

	s := &Selector{
		params:  params,
		heights: make([]int32, 0, len(schedule)),
		engines: make([]Engine, 0, len(schedule)),
	}
	for i, row := range schedule {
		if i > 0 && row.Height <= schedule[i-1].Height {
			return nil, errcode.New(errcode.ErrBadSchedule)
		}
		engine, err := NewEngine(params, row)
		if err != nil {
			return nil, err
		}
		s.heights = append(s.heights, row.Height)
		s.engines = append(s.engines, engine)
	}

	return s, nil
}

func (s *Selector) Params() *chainparams.BitcoinParams {
	return s.params
}

// EngineAt returns the engine of the highest schedule row whose activation
// height is not above height.
func (s *Selector) EngineAt(height int32) Engine {
	i := sort.Search(len(s.heights), func(i int) bool {
		return s.heights[i] > height
	})
	if i == 0 {
		return s.engines[0]
	}
	return s.engines[i-1]
}

// RequiredTarget returns the bits a header extending indexPrev must carry.
func (s *Selector) RequiredTarget(indexPrev *blockindex.BlockIndex, header *block.BlockHeader) (uint32, error) {
	height := int32(0)
	if indexPrev != nil {
		height = indexPrev.Height + 1
	}

	engine := s.EngineAt(height)
	bits, err := engine.GetNextWorkRequired(indexPrev, header)
	if err != nil {
		log.Print("pow", "error", "required target at height %d with %s failed: %v", height, engine.Algo(), err)
		return 0, err
	}
	metrics.ObserveRequiredTarget(s.params.Name, engine.Algo().String())

	return bits, nil
}

// MinWorkAt delegates ComputeMinWork to the engine in force at height.
func (s *Selector) MinWorkAt(height int32, base uint32, elapsed int64) (uint32, error) {
	return s.EngineAt(height).ComputeMinWork(base, elapsed)
}
