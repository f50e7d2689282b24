//go:build unit
// +build unit

package app

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/MGTheTrain/crypto-text/internal/domain/cryptoalg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteKeyFiles(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	nonce := []byte("0123456789ab")

	t.Run("positional names", func(t *testing.T) {
		dir := t.TempDir()

		paths, err := WriteKeyFiles(dir, cryptoalg.AlgorithmChaCha20Poly1305, [][]byte{key, nonce}, KeyFileOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "chacha20poly1305.key"),
			filepath.Join(dir, "chacha20poly1305.nonce"),
		}, paths)

		written, err := os.ReadFile(paths[1])
		require.NoError(t, err)
		assert.Equal(t, nonce, written)

		info, err := os.Stat(paths[0])
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		dir := t.TempDir()
		_, err := WriteKeyFiles(dir, cryptoalg.AlgorithmBlake3, [][]byte{key}, KeyFileOptions{})
		require.NoError(t, err)

		_, err = WriteKeyFiles(dir, cryptoalg.AlgorithmBlake3, [][]byte{[]byte("other")}, KeyFileOptions{})
		assert.ErrorContains(t, err, "already exists")

		written, err := os.ReadFile(filepath.Join(dir, "blake3.txt"))
		require.NoError(t, err)
		assert.Equal(t, key, written)
	})

	t.Run("force overwrites", func(t *testing.T) {
		dir := t.TempDir()
		_, err := WriteKeyFiles(dir, cryptoalg.AlgorithmBlake3, [][]byte{[]byte("first")}, KeyFileOptions{})
		require.NoError(t, err)

		_, err = WriteKeyFiles(dir, cryptoalg.AlgorithmBlake3, [][]byte{key}, KeyFileOptions{Force: true})
		require.NoError(t, err)

		written, err := os.ReadFile(filepath.Join(dir, "blake3.txt"))
		require.NoError(t, err)
		assert.Equal(t, key, written)
	})

	t.Run("unique prefix", func(t *testing.T) {
		dir := t.TempDir()

		paths, err := WriteKeyFiles(dir, cryptoalg.AlgorithmEd25519, [][]byte{key, key}, KeyFileOptions{Unique: true})
		require.NoError(t, err)
		require.Len(t, paths, 2)

		pattern := regexp.MustCompile(`^[0-9a-f-]{36}-ed25519\.(sk|pk)$`)
		assert.Regexp(t, pattern, filepath.Base(paths[0]))
		assert.Regexp(t, pattern, filepath.Base(paths[1]))
		assert.Equal(t, filepath.Base(paths[0])[:36], filepath.Base(paths[1])[:36])
	})

	t.Run("blob count mismatch", func(t *testing.T) {
		_, err := WriteKeyFiles(t.TempDir(), cryptoalg.AlgorithmEd25519, [][]byte{key}, KeyFileOptions{})
		assert.Error(t, err)
	})
}
