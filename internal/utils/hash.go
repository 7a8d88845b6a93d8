package utils

import (
	"hash"

	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

func NewBlake3() hash.Hash {
	return blake3.New()
}

// NewKeyedBlake3 needs a 32-byte key.
func NewKeyedBlake3(key []byte) (hash.Hash, error) {
	return blake3.NewKeyed(key)
}

func NewXXHash64() hash.Hash64 {
	return xxh3.New()
}
