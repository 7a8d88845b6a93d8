package digest

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

const (
	KeySize  = 32
	SaltSize = 16
	Iter     = 100_000
)

// DeriveKey derives a 32-byte master key from password and salt using PBKDF2.
func DeriveKey(password []byte, salt []byte) []byte {
	return pbkdf2.Key(password, salt, Iter, KeySize, sha256.New)
}

// DeriveSubKey derives the key of one algorithm from the master key, so that
// the same password never keys two algorithms identically.
func DeriveSubKey(masterKey []byte, alg Algorithm) ([]byte, error) {
	r := hkdf.New(sha256.New, masterKey, nil, []byte("jazal-digest-"+string(alg)))
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}

func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	_, err := io.ReadFull(rand.Reader, salt)
	if err != nil {
		return nil, err
	}
	return salt, nil
}
