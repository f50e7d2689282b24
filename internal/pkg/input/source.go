// Package input opens the byte stream a command operates on.
package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Source opens input paths, mapping Stdin to a configured reader.
type Source struct {
	stdin io.Reader
}

// NewSource creates a Source that reads Stdin paths from stdin.
func NewSource(stdin io.Reader) *Source {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Source{stdin: stdin}
}

// Open returns a reader for path. Closing a Stdin reader is a no-op.
func (s *Source) Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(s.stdin), nil
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}
	return f, nil
}

// ReadAll reads the full stream at path into memory.
func (s *Source) ReadAll(path string) ([]byte, error) {
	r, err := s.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close() //nolint:errcheck

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}
	return data, nil
}
