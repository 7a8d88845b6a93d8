// Package digest computes file digests for the digest command.
package digest

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"

	"jazal/internal/pathcheck"
	"jazal/internal/utils"
)

type Algorithm string

const (
	Blake3  Algorithm = "blake3"
	XXH3    Algorithm = "xxh3"
	Blake2b Algorithm = "blake2b"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown digest algorithm")
	ErrKeyUnsupported   = errors.New("algorithm does not support keys")
)

var extensions = map[Algorithm]pathcheck.Extension{
	Blake3:  pathcheck.NewExtension(".b3"),
	XXH3:    pathcheck.NewExtension(".xxh3"),
	Blake2b: pathcheck.NewExtension(".b2"),
}

func Algorithms() []Algorithm {
	return []Algorithm{Blake3, XXH3, Blake2b}
}

func ParseAlgorithm(s string) (Algorithm, error) {
	alg := Algorithm(s)
	if _, ok := extensions[alg]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
	return alg, nil
}

// Extension is the extension of files holding a digest made with a.
func (a Algorithm) Extension() pathcheck.Extension {
	return extensions[a]
}

// New returns a hash for alg. A non-nil key makes blake3 and blake2b keyed;
// it must be KeySize bytes long.
func New(alg Algorithm, key []byte) (hash.Hash, error) {
	switch alg {
	case Blake3:
		if key == nil {
			return utils.NewBlake3(), nil
		}
		return utils.NewKeyedBlake3(key)
	case XXH3:
		if key != nil {
			return nil, fmt.Errorf("%w: %s", ErrKeyUnsupported, alg)
		}
		return utils.NewXXHash64(), nil
	case Blake2b:
		return blake2b.New256(key)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
}

// File hashes the file at path and returns the hex digest. onProgress, if
// set, receives the size of every chunk read.
func File(path string, alg Algorithm, key []byte, onProgress func(n int)) (string, error) {
	h, err := New(alg, key)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, 64*1024)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
			if onProgress != nil {
				onProgress(n)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
