package cryptoalg

import (
	"fmt"
	"strings"
)

// Algorithm identifies one concrete algorithm family.
type Algorithm string

const (
	// AlgorithmBlake3 is the BLAKE3 keyed hash
	AlgorithmBlake3 Algorithm = "blake3"
	// AlgorithmEd25519 is the Ed25519 signature scheme
	AlgorithmEd25519 Algorithm = "ed25519"
	// AlgorithmChaCha20Poly1305 is the ChaCha20-Poly1305 AEAD cipher
	AlgorithmChaCha20Poly1305 Algorithm = "chacha20poly1305"
)

// Algorithms lists every supported algorithm tag.
var Algorithms = []Algorithm{AlgorithmBlake3, AlgorithmEd25519, AlgorithmChaCha20Poly1305}

// ParseAlgorithm parses an algorithm tag case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case AlgorithmBlake3, AlgorithmEd25519, AlgorithmChaCha20Poly1305:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// String returns the string representation of the Algorithm.
func (a Algorithm) String() string {
	return string(a)
}

// CanSign reports whether the algorithm supports signing and verification.
func (a Algorithm) CanSign() bool {
	return a == AlgorithmBlake3 || a == AlgorithmEd25519
}

// CanEncrypt reports whether the algorithm supports encryption and decryption.
func (a Algorithm) CanEncrypt() bool {
	return a == AlgorithmChaCha20Poly1305
}

// Key and signature sizes in bytes
const (
	Blake3KeySize    = 32
	Blake3DigestSize = 32

	Ed25519SeedSize      = 32
	Ed25519PublicKeySize = 32
	Ed25519SignatureSize = 64

	ChaCha20Poly1305KeySize   = 32
	ChaCha20Poly1305NonceSize = 12
	ChaCha20Poly1305TagSize   = 16
)

// Key generation modes for the BLAKE3 key
const (
	// KeyModeRaw draws the key from raw random bytes
	KeyModeRaw = "raw"
	// KeyModePrintable draws the key from printable password characters
	KeyModePrintable = "printable"
)
