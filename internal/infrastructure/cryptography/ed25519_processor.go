package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MGTheTrain/crypto-text/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-text/internal/pkg/logger"

	"github.com/cloudflare/circl/sign/ed25519"
)

var (
	_ cryptoalg.Signer       = (*Ed25519Signer)(nil)
	_ cryptoalg.Verifier     = (*Ed25519Verifier)(nil)
	_ cryptoalg.KeyGenerator = (*Ed25519KeyGenerator)(nil)
)

// Ed25519Signer signs with the private half of an Ed25519 key pair.
// It does not verify; use an Ed25519Verifier built from the public half.
type Ed25519Signer struct {
	key    ed25519.PrivateKey
	logger logger.Logger
}

// NewEd25519Signer creates an Ed25519Signer from a 32-byte seed.
func NewEd25519Signer(seed []byte, logger logger.Logger) (*Ed25519Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: ed25519 seed must be %d bytes, got %d", cryptoalg.ErrInvalidKeyLength, ed25519.SeedSize, len(seed))
	}

	return &Ed25519Signer{
		key:    ed25519.NewKeyFromSeed(seed),
		logger: logger,
	}, nil
}

// LoadEd25519Signer reads a raw 32-byte seed from keyPath.
func LoadEd25519Signer(keyPath string, logger logger.Logger) (*Ed25519Signer, error) {
	seed, err := readKeyFile(keyPath, cryptoalg.Ed25519SeedSize, cryptoalg.ErrInvalidKeyLength)
	if err != nil {
		return nil, err
	}
	return NewEd25519Signer(seed, logger)
}

// Sign returns the 64-byte Ed25519 signature of the stream.
func (s *Ed25519Signer) Sign(r io.Reader) ([]byte, error) {
	message, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read message: %w", err)
	}

	signature := ed25519.Sign(s.key, message)

	s.logger.Info("Ed25519 signing succeeded")
	return signature, nil
}

// Public returns the public key derived from the seed.
func (s *Ed25519Signer) Public() []byte {
	public := make([]byte, ed25519.PublicKeySize)
	copy(public, s.key[ed25519.SeedSize:])
	return public
}

// Ed25519Verifier verifies with the public half of an Ed25519 key pair.
type Ed25519Verifier struct {
	key    ed25519.PublicKey
	logger logger.Logger
}

// NewEd25519Verifier creates an Ed25519Verifier from a 32-byte public key.
func NewEd25519Verifier(publicKey []byte, logger logger.Logger) (*Ed25519Verifier, error) {
	if len(publicKey) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: ed25519 public key must be %d bytes, got %d", cryptoalg.ErrInvalidKeyLength, ed25519.PublicKeySize, len(publicKey))
	}

	key := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(key, publicKey)
	return &Ed25519Verifier{key: key, logger: logger}, nil
}

// LoadEd25519Verifier reads a raw 32-byte public key from keyPath.
func LoadEd25519Verifier(keyPath string, logger logger.Logger) (*Ed25519Verifier, error) {
	publicKey, err := readKeyFile(keyPath, cryptoalg.Ed25519PublicKeySize, cryptoalg.ErrInvalidKeyLength)
	if err != nil {
		return nil, err
	}
	return NewEd25519Verifier(publicKey, logger)
}

// Verify reports whether signature is a valid Ed25519 signature of the stream.
// A signature that is not 64 bytes long is a format error.
func (v *Ed25519Verifier) Verify(r io.Reader, signature []byte) (bool, error) {
	if len(signature) != ed25519.SignatureSize {
		return false, fmt.Errorf("%w: ed25519 signature must be %d bytes, got %d", cryptoalg.ErrInvalidSignature, ed25519.SignatureSize, len(signature))
	}

	message, err := io.ReadAll(r)
	if err != nil {
		return false, fmt.Errorf("failed to read message: %w", err)
	}

	valid := ed25519.Verify(v.key, message, signature)
	v.logger.Info("Ed25519 verification completed, valid: ", valid)
	return valid, nil
}

// Ed25519KeyGenerator produces Ed25519 key pairs.
type Ed25519KeyGenerator struct {
	random io.Reader
	logger logger.Logger
}

// NewEd25519KeyGenerator creates an Ed25519KeyGenerator drawing from crypto/rand.
func NewEd25519KeyGenerator(logger logger.Logger) *Ed25519KeyGenerator {
	return &Ed25519KeyGenerator{random: rand.Reader, logger: logger}
}

// Generate returns the 32-byte seed followed by the 32-byte public key.
func (g *Ed25519KeyGenerator) Generate() ([][]byte, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(g.random)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Ed25519 key pair: %w", err)
	}

	g.logger.Info("Generated Ed25519 key pair")
	return [][]byte{privateKey.Seed(), []byte(publicKey)}, nil
}
