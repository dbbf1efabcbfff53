package chainparams

import (
	_ "embed"
	"math/big"

	"github.com/Litecoindark/LTCD/errcode"
	"github.com/Litecoindark/LTCD/model/checkpoint"
	"github.com/Litecoindark/LTCD/model/consensus"
)

const (
	MainNetName = "main"
	TestNetName = "test"
	RegTestName = "regtest"
)

var (
	bigOne = big.NewInt(1)
	// 2^236 -1, starting difficulty is 1 / 2^12
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)
	// 2^255 -1
	regressingPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
	testNetPowLimit    = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)
)

var (
	//go:embed checkpoints/main.yml
	mainCheckpointsYAML []byte
	//go:embed checkpoints/test.yml
	testCheckpointsYAML []byte
)

// legacyParam is the launch retarget window: 5 hours of 1 minute blocks.
var legacyParam = consensus.DifficultyParam{
	TargetTimespan: 18000,
	TargetSpacing:  60,
}

var kgwParam = consensus.KGWParam{
	PastBlocksMin: 360,   // 6 hours of blocks
	PastBlocksMax: 10080, // 7 days of blocks
}

// BitcoinParams holds the consensus constants of one network. Values are
// never modified after package initialisation.
type BitcoinParams struct {
	Name string

	PowLimit     *big.Int
	PowLimitBits uint32

	// relaxed rules: min-difficulty blocks after 2*spacing without a block
	FPowAllowMinDifficultyBlocks bool
	// the network never enforces checkpoints
	CheckpointsExempt bool

	CheckpointData *checkpoint.Data

	// ordered by ascending activation height, first row at height 0
	DifficultySchedule []consensus.Activation
}

var MainNetParams = BitcoinParams{
	Name:                         MainNetName,
	PowLimit:                     mainPowLimit,
	PowLimitBits:                 0x1e0fffff,
	FPowAllowMinDifficultyBlocks: false,
	CheckpointsExempt:            false,
	CheckpointData:               checkpoint.MustParse(mainCheckpointsYAML),
	DifficultySchedule: []consensus.Activation{
		{Height: 0, Algo: consensus.AlgoLegacy, Param: legacyParam},
		{Height: 25000, Algo: consensus.AlgoClampedRetarget, Param: consensus.DifficultyParam{
			TargetTimespan: 3000,
			TargetSpacing:  60,
		}},
		{Height: 33000, Algo: consensus.AlgoKimotoGravityWell, Param: legacyParam, KGW: kgwParam},
	},
}

var TestNetParams = BitcoinParams{
	Name:                         TestNetName,
	PowLimit:                     testNetPowLimit,
	PowLimitBits:                 0x1e0fffff,
	FPowAllowMinDifficultyBlocks: true,
	CheckpointsExempt:            false,
	CheckpointData:               checkpoint.MustParse(testCheckpointsYAML),
	DifficultySchedule: []consensus.Activation{
		{Height: 0, Algo: consensus.AlgoMinDifficulty, Param: legacyParam},
		{Height: 500, Algo: consensus.AlgoLegacy, Param: legacyParam},
		{Height: 4000, Algo: consensus.AlgoKimotoGravityWell, Param: legacyParam, KGW: kgwParam},
	},
}

var RegressionNetParams = BitcoinParams{
	Name:                         RegTestName,
	PowLimit:                     regressingPowLimit,
	PowLimitBits:                 0x207fffff,
	FPowAllowMinDifficultyBlocks: true,
	CheckpointsExempt:            true,
	CheckpointData:               &checkpoint.Data{Version: checkpoint.Version},
	DifficultySchedule: []consensus.Activation{
		{Height: 0, Algo: consensus.AlgoMinDifficulty, Param: legacyParam},
	},
}

var registeredNets = map[string]*BitcoinParams{
	MainNetName: &MainNetParams,
	TestNetName: &TestNetParams,
	RegTestName: &RegressionNetParams,
}

// ForNetwork returns the parameters registered under name.
func ForNetwork(name string) (*BitcoinParams, error) {
	if params, ok := registeredNets[name]; ok {
		return params, nil
	}
	return nil, errcode.New(errcode.ErrConfUnknownNetwork)
}

// NetworkName maps the command line network switches to a network name.
// regtest wins when both are set; conf rejects that combination earlier.
func NetworkName(testnet, regtest bool) string {
	switch {
	case regtest:
		return RegTestName
	case testnet:
		return TestNetName
	default:
		return MainNetName
	}
}

