package checkpoint

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Litecoindark/LTCD/errcode"
	"github.com/Litecoindark/LTCD/util"
)

const validDoc = `
version: 1
checkpoints:
  - height: 100
    hash: 59cc0628179755b56e89eb279962749a4c29b03b15c4707ef13cd929d1184e17
  - height: 0
    hash: 0e286802e2a399cad2f4a6e41f0584a162dddfb303b78839b690e77dee2310e1
  - height: 50
    hash: 3145c1a9874355a6dd6974788581d12454542de407c1ed7a6e749faa24ae9f80
stats:
  time: 1411883734
  transactions: 2179203
  txPerDay: 8000.0
`

func TestParse(t *testing.T) {
	data, err := Parse([]byte(validDoc))
	require.NoError(t, err)

	if len(data.Checkpoints) != 3 {
		t.Fatalf("expect 3 checkpoints, got %s", spew.Sdump(data))
	}
	heights := []int32{0, 50, 100}
	for i, cp := range data.Checkpoints {
		if cp.Height != heights[i] {
			t.Errorf("checkpoint %d: expect height %d, actual %d", i, heights[i], cp.Height)
		}
	}
	assert.Equal(t, *util.HashFromString("0e286802e2a399cad2f4a6e41f0584a162dddfb303b78839b690e77dee2310e1"),
		data.Checkpoints[0].Hash)
	assert.Equal(t, int64(1411883734), data.TimeLastCheckpoint)
	assert.Equal(t, int64(2179203), data.TransactionsLastCheckpoint)
	assert.Equal(t, 8000.0, data.TransactionsPerDay)
	assert.Equal(t, int32(100), data.Checkpoints[len(data.Checkpoints)-1].Height)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errcode.CheckpointErr
	}{
		{
			name: "unknown version",
			doc:  "version: 2\ncheckpoints: []\n",
			code: errcode.ErrCheckpointVersion,
		},
		{
			name: "duplicate height",
			doc: `version: 1
checkpoints:
  - {height: 5, hash: 0e286802e2a399cad2f4a6e41f0584a162dddfb303b78839b690e77dee2310e1}
  - {height: 5, hash: 3145c1a9874355a6dd6974788581d12454542de407c1ed7a6e749faa24ae9f80}
`,
			code: errcode.ErrCheckpointDuplicate,
		},
		{
			name: "short hash",
			doc: `version: 1
checkpoints:
  - {height: 5, hash: 0e2868}
`,
			code: errcode.ErrCheckpointHash,
		},
		{
			name: "non hex hash",
			doc: `version: 1
checkpoints:
  - {height: 5, hash: zz286802e2a399cad2f4a6e41f0584a162dddfb303b78839b690e77dee2310e1}
`,
			code: errcode.ErrCheckpointHash,
		},
		{
			name: "negative height",
			doc: `version: 1
checkpoints:
  - {height: -1, hash: 0e286802e2a399cad2f4a6e41f0584a162dddfb303b78839b690e77dee2310e1}
`,
			code: errcode.ErrCheckpointHeight,
		},
	}

	for _, test := range tests {
		_, err := Parse([]byte(test.doc))
		if !errcode.IsErrorCode(err, test.code) {
			t.Errorf("%s: expect %v, got %v", test.name, test.code, err)
		}
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("version: [1"))
	assert.Error(t, err)
	assert.Panics(t, func() { MustParse([]byte("version: 7")) })
}
