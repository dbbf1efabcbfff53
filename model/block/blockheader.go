package block

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"golang.org/x/crypto/scrypt"

	"github.com/Litecoindark/LTCD/util"
)

type BlockHeader struct {
	Version       int32
	HashPrevBlock util.Hash
	MerkleRoot    util.Hash
	Time          uint32
	Bits          uint32
	Nonce         uint32
}

func NewBlockHeader() *BlockHeader {
	return &BlockHeader{}
}

func (bh *BlockHeader) IsNull() bool {
	return bh.Bits == 0
}

func (bh *BlockHeader) GetBlockTime() int64 {
	return int64(bh.Time)
}

func (bh *BlockHeader) SetNull() {
	*bh = BlockHeader{}
}

const blockHeaderLength = 80

func (bh *BlockHeader) toWire() *wire.BlockHeader {
	h := wire.NewBlockHeader(bh.Version, (*chainhash.Hash)(&bh.HashPrevBlock),
		(*chainhash.Hash)(&bh.MerkleRoot), bh.Bits, bh.Nonce)
	h.Timestamp = time.Unix(int64(bh.Time), 0)
	return h
}

func (bh *BlockHeader) Serialize(w io.Writer) error {
	return bh.toWire().Serialize(w)
}

func (bh *BlockHeader) Unserialize(r io.Reader) error {
	var h wire.BlockHeader
	if err := h.Deserialize(r); err != nil {
		return err
	}

	bh.Version = h.Version
	bh.HashPrevBlock = util.Hash(h.PrevBlock)
	bh.MerkleRoot = util.Hash(h.MerkleRoot)
	bh.Time = uint32(h.Timestamp.Unix())
	bh.Bits = h.Bits
	bh.Nonce = h.Nonce
	return nil
}

// GetHash returns the double-SHA256 identity hash of the header.
func (bh *BlockHeader) GetHash() util.Hash {
	return util.Hash(bh.toWire().BlockHash())
}

// GetPowHash returns the scrypt(1024, 1, 1) hash of the header that is
// compared against the target.
func (bh *BlockHeader) GetPowHash() (util.Hash, error) {
	buf := bytes.NewBuffer(make([]byte, 0, blockHeaderLength))
	if err := bh.Serialize(buf); err != nil {
		return util.Hash{}, err
	}

	key, err := scrypt.Key(buf.Bytes(), buf.Bytes(), 1024, 1, 1, util.Hash256Size)
	if err != nil {
		return util.Hash{}, err
	}

	var hash util.Hash
	copy(hash[:], key)
	return hash, nil
}

func (bh *BlockHeader) String() string {
	return fmt.Sprintf("Block version : %d, hashPrevBlock : %s, hashMerkleRoot : %s,"+
		"Time : %d, Bits : %08x, nonce : %d, BlockHash : %s\n", bh.Version, bh.HashPrevBlock,
		bh.MerkleRoot, bh.Time, bh.Bits, bh.Nonce, bh.GetHash())
}
