package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/crypto-text/internal/domain/cryptoalg"

	"github.com/google/uuid"
)

// KeyFileOptions controls how generated key material is written.
type KeyFileOptions struct {
	// Force overwrites existing files.
	Force bool
	// Unique prefixes every file name with a random UUID.
	Unique bool
}

// KeyFileNames returns the file names generated blobs are written to, in blob order.
func KeyFileNames(algorithm cryptoalg.Algorithm) ([]string, error) {
	switch algorithm {
	case cryptoalg.AlgorithmBlake3:
		return []string{"blake3.txt"}, nil
	case cryptoalg.AlgorithmEd25519:
		return []string{"ed25519.sk", "ed25519.pk"}, nil
	case cryptoalg.AlgorithmChaCha20Poly1305:
		return []string{"chacha20poly1305.key", "chacha20poly1305.nonce"}, nil
	default:
		return nil, fmt.Errorf("%w: %q", cryptoalg.ErrUnsupportedAlgorithm, algorithm)
	}
}

// WriteKeyFiles writes blobs to dir by position and returns the written paths.
// Nothing is written when any target already exists and opts.Force is not set.
func WriteKeyFiles(dir string, algorithm cryptoalg.Algorithm, blobs [][]byte, opts KeyFileOptions) ([]string, error) {
	names, err := KeyFileNames(algorithm)
	if err != nil {
		return nil, err
	}
	if len(names) != len(blobs) {
		return nil, fmt.Errorf("%s produced %d key blobs, expected %d", algorithm, len(blobs), len(names))
	}

	prefix := ""
	if opts.Unique {
		prefix = uuid.New().String() + "-"
	}

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, prefix+name)
		if opts.Force {
			continue
		}
		if _, err := os.Stat(paths[i]); err == nil {
			return nil, fmt.Errorf("key file %s already exists", paths[i])
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to check key file %s: %w", paths[i], err)
		}
	}

	for i, path := range paths {
		if err := os.WriteFile(path, blobs[i], 0600); err != nil {
			return nil, fmt.Errorf("failed to write key file %s: %w", path, err)
		}
	}

	return paths, nil
}
