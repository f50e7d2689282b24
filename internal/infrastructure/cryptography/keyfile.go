package cryptography

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// readKeyFile reads raw key material and rejects any byte count other than size.
// lengthErr is the sentinel wrapped on a size mismatch.
func readKeyFile(path string, size int, lengthErr error) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("unable to read key file %s: %w", path, err)
	}

	if len(data) != size {
		return nil, fmt.Errorf("%w: %s holds %d bytes, expected %d", lengthErr, path, len(data), size)
	}

	return data, nil
}

// randomBytes draws n bytes from random.
func randomBytes(random io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(random, b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}
