package chainparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Litecoindark/LTCD/errcode"
	"github.com/Litecoindark/LTCD/model/consensus"
	"github.com/Litecoindark/LTCD/util"
)

func TestForNetwork(t *testing.T) {
	tests := []struct {
		name string
		exp  *BitcoinParams
	}{
		{MainNetName, &MainNetParams},
		{TestNetName, &TestNetParams},
		{RegTestName, &RegressionNetParams},
	}
	for _, test := range tests {
		params, err := ForNetwork(test.name)
		if err != nil || params != test.exp {
			t.Errorf("ForNetwork(%s) returned %v, %v", test.name, params, err)
		}
	}

	_, err := ForNetwork("simnet")
	assert.True(t, errcode.IsErrorCode(err, errcode.ErrConfUnknownNetwork))
}

func TestNetworkName(t *testing.T) {
	assert.Equal(t, MainNetName, NetworkName(false, false))
	assert.Equal(t, TestNetName, NetworkName(true, false))
	assert.Equal(t, RegTestName, NetworkName(false, true))
}

func TestEmbeddedCheckpoints(t *testing.T) {
	mainData := MainNetParams.CheckpointData
	require.Len(t, mainData.Checkpoints, 33)
	assert.Equal(t, int32(0), mainData.Checkpoints[0].Height)
	assert.Equal(t, *util.HashFromString("0e286802e2a399cad2f4a6e41f0584a162dddfb303b78839b690e77dee2310e1"),
		mainData.Checkpoints[0].Hash)
	assert.Equal(t, int32(32000), mainData.Checkpoints[len(mainData.Checkpoints)-1].Height)
	assert.Equal(t, int64(1411883734), mainData.TimeLastCheckpoint)
	assert.Equal(t, int64(2179203), mainData.TransactionsLastCheckpoint)
	assert.Equal(t, 8000.0, mainData.TransactionsPerDay)

	test := TestNetParams.CheckpointData
	require.Len(t, test.Checkpoints, 1)
	assert.Equal(t, int32(546), test.Checkpoints[0].Height)
	assert.Equal(t, int64(1365458829), test.TimeLastCheckpoint)
	assert.Equal(t, int64(547), test.TransactionsLastCheckpoint)
	assert.Equal(t, 576.0, test.TransactionsPerDay)

	assert.True(t, RegressionNetParams.CheckpointsExempt)
	assert.Empty(t, RegressionNetParams.CheckpointData.Checkpoints)
}

func TestPowLimit(t *testing.T) {
	assert.Equal(t, 236, MainNetParams.PowLimit.BitLen())
	assert.Equal(t, 0, MainNetParams.PowLimit.Cmp(TestNetParams.PowLimit))
	assert.Equal(t, 255, RegressionNetParams.PowLimit.BitLen())
}

func TestDifficultySchedule(t *testing.T) {
	for _, params := range registeredNets {
		schedule := params.DifficultySchedule
		require.NotEmpty(t, schedule, params.Name)
		assert.Equal(t, int32(0), schedule[0].Height, params.Name)
		for i := 1; i < len(schedule); i++ {
			if schedule[i].Height <= schedule[i-1].Height {
				t.Errorf("%s schedule row %d is not ascending", params.Name, i)
			}
		}
		for _, row := range schedule {
			assert.True(t, row.Algo.IsValid(), params.Name)
			assert.NotZero(t, row.Param.Interval(), params.Name)
		}
	}

	assert.Equal(t, consensus.AlgoKimotoGravityWell, MainNetParams.DifficultySchedule[2].Algo)
	assert.Equal(t, int64(50), MainNetParams.DifficultySchedule[1].Param.Interval())
}
