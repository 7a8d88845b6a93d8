package digest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	for _, alg := range Algorithms() {
		got, err := ParseAlgorithm(string(alg))
		require.NoError(t, err)
		assert.Equal(t, alg, got)
		assert.False(t, alg.Extension().IsEmpty())
	}

	_, err := ParseAlgorithm("md5")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	data := bytes.Repeat([]byte("jazal"), 40_000)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	for _, alg := range Algorithms() {
		alg := alg
		t.Run(string(alg), func(t *testing.T) {
			t.Parallel()

			var seen int
			sum, err := File(path, alg, nil, func(n int) { seen += n })
			require.NoError(t, err)
			assert.Equal(t, len(data), seen)

			h, err := New(alg, nil)
			require.NoError(t, err)
			h.Write(data)
			want := h.Sum(nil)
			assert.Len(t, sum, 2*len(want))

			again, err := File(path, alg, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, sum, again)
		})
	}
}

func TestKeyedDigests(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	salt, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt, SaltSize)

	master := DeriveKey([]byte("secret"), salt)
	assert.Len(t, master, KeySize)

	for _, alg := range []Algorithm{Blake3, Blake2b} {
		key, err := DeriveSubKey(master, alg)
		require.NoError(t, err)
		assert.Len(t, key, KeySize)

		plain, err := File(path, alg, nil, nil)
		require.NoError(t, err)
		keyed, err := File(path, alg, key, nil)
		require.NoError(t, err)
		assert.NotEqual(t, plain, keyed)
	}

	k1, err := DeriveSubKey(master, Blake3)
	require.NoError(t, err)
	k2, err := DeriveSubKey(master, Blake2b)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)

	_, err = New(XXH3, master)
	require.ErrorIs(t, err, ErrKeyUnsupported)
}

func TestFileMissing(t *testing.T) {
	t.Parallel()

	_, err := File(filepath.Join(t.TempDir(), "nope"), Blake3, nil, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}
