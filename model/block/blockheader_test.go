package block

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Litecoindark/LTCD/util"
)

func TestBlockHeaderGetHash(t *testing.T) {
	// bitcoin mainnet genesis header
	bh := BlockHeader{
		Version:    1,
		MerkleRoot: *util.HashFromString("4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"),
		Time:       1231006505,
		Bits:       0x1d00ffff,
		Nonce:      2083236893,
	}

	hash := bh.GetHash()
	assert.Equal(t, "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f", hash.String())
}

func TestBlockHeaderGetPowHash(t *testing.T) {
	// litecoin mainnet genesis header
	bh := BlockHeader{
		Version:    1,
		MerkleRoot: *util.HashFromString("97ddfbbae6be97fd6cdf3e7ca13232a3afff2353e29badfab7f73011edd4ced9"),
		Time:       1317972665,
		Bits:       0x1e0ffff0,
		Nonce:      2084524493,
	}

	hash := bh.GetHash()
	assert.Equal(t, "12a765e31ffd4059bada1e25190f6e98c99d9714d334efa41a195a7e7e04bfe2", hash.String())

	powHash, err := bh.GetPowHash()
	assert.NoError(t, err)
	assert.Equal(t, "0000050c34a64b415b6b15b37f2216634b5b1669cb9a2e38d76f7213b0671e00", powHash.String())
}

func TestBlockHeaderSerialize(t *testing.T) {
	bh := BlockHeader{
		Version:       2,
		HashPrevBlock: *util.HashFromString("12a765e31ffd4059bada1e25190f6e98c99d9714d334efa41a195a7e7e04bfe2"),
		MerkleRoot:    *util.HashFromString("97ddfbbae6be97fd6cdf3e7ca13232a3afff2353e29badfab7f73011edd4ced9"),
		Time:          1317972665,
		Bits:          0x1e0ffff0,
		Nonce:         2084524493,
	}

	buf := new(bytes.Buffer)
	assert.NoError(t, bh.Serialize(buf))
	assert.Equal(t, blockHeaderLength, buf.Len())
	assert.Equal(t, []byte{0x02, 0x00, 0x00, 0x00, 0xe2, 0xbf}, buf.Bytes()[:6])

	var got BlockHeader
	assert.NoError(t, got.Unserialize(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, bh, got)

	assert.Error(t, got.Unserialize(bytes.NewReader(buf.Bytes()[:40])))
}

func TestBlockHeaderNull(t *testing.T) {
	bh := NewBlockHeader()
	assert.True(t, bh.IsNull())

	bh.Bits = 0x1e0fffff
	bh.Time = 1411883734
	assert.False(t, bh.IsNull())
	assert.Equal(t, int64(1411883734), bh.GetBlockTime())

	bh.SetNull()
	assert.True(t, bh.IsNull())
	assert.Equal(t, BlockHeader{}, *bh)
}
