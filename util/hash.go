package util

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

const (
	Hash256Size       = 32
	MaxHashStringSize = Hash256Size * 2
)

// Hash is a 256-bit block identifier stored in little-endian byte order,
// printed in the usual reversed hex form.
type Hash [Hash256Size]byte

var HashZero = Hash{}

func (hash Hash) String() string {
	return hash.ToString()
}

func (hash *Hash) ToString() string {
	bytes := hash.GetCloneBytes()
	for i := 0; i < Hash256Size/2; i++ {
		bytes[i], bytes[Hash256Size-1-i] = bytes[Hash256Size-1-i], bytes[i]
	}
	return hex.EncodeToString(bytes)
}

func (hash *Hash) GetCloneBytes() []byte {
	bytes := make([]byte, Hash256Size)
	copy(bytes, hash[:])
	return bytes
}

// ToBigInt interprets the hash as a little-endian 256-bit unsigned number,
// which is how proof-of-work compares it against a target.
func (hash *Hash) ToBigInt() *big.Int {
	buf := hash.GetCloneBytes()
	for i := 0; i < Hash256Size/2; i++ {
		buf[i], buf[Hash256Size-1-i] = buf[Hash256Size-1-i], buf[i]
	}
	return new(big.Int).SetBytes(buf)
}

func (hash *Hash) Cmp(other *Hash) int {
	if hash == nil && other == nil {
		return 0
	} else if hash == nil {
		return -1
	} else if other == nil {
		return 1
	}
	return hash.ToBigInt().Cmp(other.ToBigInt())
}

func (hash *Hash) SetBytes(bytes []byte) error {
	length := len(bytes)
	if length != Hash256Size {
		return fmt.Errorf("invalid hash length of %v , want %v", length, Hash256Size)
	}
	copy(hash[:], bytes)
	return nil
}

func (hash *Hash) IsEqual(target *Hash) bool {
	if hash == nil && target == nil {
		return true
	}
	if hash == nil || target == nil {
		return false
	}
	return *hash == *target
}

func (hash *Hash) IsNull() bool {
	return *hash == HashZero
}

func GetHashFromStr(hashStr string) (*Hash, error) {
	bytes, err := DecodeHash(hashStr)
	if err != nil {
		return nil, err
	}
	hash := new(Hash)
	if err := hash.SetBytes(bytes); err != nil {
		return nil, err
	}
	return hash, nil
}

// DecodeHash decodes a reversed hex string, optionally 0x prefixed and
// shorter than 64 characters, into little-endian hash bytes.
func DecodeHash(src string) ([]byte, error) {
	if len(src) >= 2 && src[0] == '0' && (src[1] == 'x' || src[1] == 'X') {
		src = src[2:]
	}
	if len(src) > MaxHashStringSize {
		return nil, fmt.Errorf("max hash string length is %v bytes", MaxHashStringSize)
	}
	var srcBytes []byte
	if len(src)%2 == 0 {
		srcBytes = []byte(src)
	} else {
		srcBytes = make([]byte, 1+len(src))
		srcBytes[0] = '0'
		copy(srcBytes[1:], src)
	}
	reversedHash := make([]byte, Hash256Size)
	_, err := hex.Decode(reversedHash[Hash256Size-hex.DecodedLen(len(srcBytes)):], srcBytes)
	if err != nil {
		return nil, err
	}
	bytes := make([]byte, Hash256Size)
	for i, b := range reversedHash[:Hash256Size/2] {
		bytes[i], bytes[Hash256Size-1-i] = reversedHash[Hash256Size-1-i], b
	}
	return bytes, nil
}

func HashFromString(hexString string) *Hash {
	hash, err := GetHashFromStr(hexString)
	if err != nil {
		panic(err)
	}
	return hash
}
