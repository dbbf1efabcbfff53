package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Litecoindark/LTCD/logic/lblock"
	"github.com/Litecoindark/LTCD/logic/lchain"
	"github.com/Litecoindark/LTCD/model/block"
	"github.com/Litecoindark/LTCD/model/chainparams"
	"github.com/Litecoindark/LTCD/model/pow"
	"github.com/Litecoindark/LTCD/util"
)

func regtestProcessor(t *testing.T) *lchain.HeaderProcessor {
	t.Helper()

	p, err := lchain.NewHeaderProcessor(&chainparams.RegressionNetParams, true)
	require.NoError(t, err)
	return p
}

// minedHeaders returns count regtest headers as hex lines.
func minedHeaders(t *testing.T, count int) []string {
	t.Helper()

	selector, err := pow.NewSelector(&chainparams.RegressionNetParams)
	require.NoError(t, err)

	lines := make([]string, 0, count)
	prev := util.Hash{}
	for i := 0; i < count; i++ {
		header := &block.BlockHeader{
			Version:       1,
			HashPrevBlock: prev,
			Time:          1296688602 + uint32(i)*150,
			Bits:          0x207fffff,
		}
		for lblock.CheckBlockHeader(header, selector) != nil {
			header.Nonce++
		}

		buf := new(bytes.Buffer)
		require.NoError(t, header.Serialize(buf))
		lines = append(lines, hex.EncodeToString(buf.Bytes()))
		prev = header.GetHash()
	}
	return lines
}

func TestImportHeaders(t *testing.T) {
	lines := minedHeaders(t, 3)
	input := "# regtest\n" + lines[0] + "\n\n" + lines[1] + " 10\n" + lines[2] + "\n"

	p := regtestProcessor(t)
	count, err := importHeaders(context.Background(), p, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, int32(2), p.Chain().Height())
	assert.Equal(t, int64(12), p.Chain().Tip().ChainTxCount)
}

func TestImportHeadersErrors(t *testing.T) {
	lines := minedHeaders(t, 2)

	tests := []struct {
		name  string
		input string
		count int
	}{
		{"not hex", "zz\n", 0},
		{"short header", lines[0][:100] + "\n", 0},
		{"trailing bytes", lines[0] + "00\n", 0},
		{"bad tx count", lines[0] + " 0\n", 0},
		{"out of order", lines[1] + "\n", 0},
		{"duplicate", lines[0] + "\n" + lines[0] + "\n", 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			count, err := importHeaders(context.Background(), regtestProcessor(t), strings.NewReader(test.input))
			assert.Error(t, err)
			assert.Equal(t, test.count, count)
		})
	}
}

func TestImportHeadersCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := importHeaders(ctx, regtestProcessor(t), strings.NewReader(minedHeaders(t, 1)[0]))
	assert.ErrorIs(t, err, context.Canceled)
}
