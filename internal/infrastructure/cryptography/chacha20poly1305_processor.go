package cryptography

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MGTheTrain/crypto-text/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-text/internal/pkg/logger"

	"golang.org/x/crypto/chacha20poly1305"
)

var (
	_ cryptoalg.Cipher       = (*ChaCha20Poly1305Processor)(nil)
	_ cryptoalg.KeyGenerator = (*ChaCha20Poly1305KeyGenerator)(nil)
)

// ChaCha20Poly1305Processor encrypts and decrypts with ChaCha20-Poly1305
// under one fixed key and nonce. The caller must never encrypt two different
// messages with the same key and nonce pair.
type ChaCha20Poly1305Processor struct {
	aead   cipher.AEAD
	nonce  []byte
	logger logger.Logger
}

// NewChaCha20Poly1305Processor creates a processor from a 32-byte key and a 12-byte nonce.
func NewChaCha20Poly1305Processor(key, nonce []byte, logger logger.Logger) (*ChaCha20Poly1305Processor, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: chacha20poly1305 key must be %d bytes, got %d", cryptoalg.ErrInvalidKeyLength, chacha20poly1305.KeySize, len(key))
	}
	if len(nonce) != chacha20poly1305.NonceSize {
		return nil, fmt.Errorf("%w: chacha20poly1305 nonce must be %d bytes, got %d", cryptoalg.ErrInvalidNonceLength, chacha20poly1305.NonceSize, len(nonce))
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	n := make([]byte, len(nonce))
	copy(n, nonce)
	return &ChaCha20Poly1305Processor{aead: aead, nonce: n, logger: logger}, nil
}

// LoadChaCha20Poly1305Processor reads the raw key and nonce from their files.
// Both are required; they form one matched pair.
func LoadChaCha20Poly1305Processor(keyPath, noncePath string, logger logger.Logger) (*ChaCha20Poly1305Processor, error) {
	key, err := readKeyFile(keyPath, cryptoalg.ChaCha20Poly1305KeySize, cryptoalg.ErrInvalidKeyLength)
	if err != nil {
		return nil, err
	}
	nonce, err := readKeyFile(noncePath, cryptoalg.ChaCha20Poly1305NonceSize, cryptoalg.ErrInvalidNonceLength)
	if err != nil {
		return nil, err
	}
	return NewChaCha20Poly1305Processor(key, nonce, logger)
}

// Encrypt seals the stream. The result is the ciphertext followed by the 16-byte tag.
func (p *ChaCha20Poly1305Processor) Encrypt(r io.Reader) ([]byte, error) {
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read plaintext: %w", err)
	}

	ciphertext := p.aead.Seal(nil, p.nonce, plaintext, nil)

	p.logger.Info("ChaCha20-Poly1305 encryption succeeded")
	return ciphertext, nil
}

// Decrypt opens a ciphertext produced by Encrypt. It fails without returning
// any plaintext when the tag does not authenticate.
func (p *ChaCha20Poly1305Processor) Decrypt(r io.Reader) ([]byte, error) {
	ciphertext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read ciphertext: %w", err)
	}

	if len(ciphertext) < p.aead.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext shorter than the %d-byte tag", cryptoalg.ErrDecryptionFailed, p.aead.Overhead())
	}

	plaintext, err := p.aead.Open(nil, p.nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: message authentication failed", cryptoalg.ErrDecryptionFailed)
	}

	p.logger.Info("ChaCha20-Poly1305 decryption succeeded")
	return plaintext, nil
}

// ChaCha20Poly1305KeyGenerator produces independent random keys and nonces.
type ChaCha20Poly1305KeyGenerator struct {
	random io.Reader
	logger logger.Logger
}

// NewChaCha20Poly1305KeyGenerator creates a ChaCha20Poly1305KeyGenerator drawing from crypto/rand.
func NewChaCha20Poly1305KeyGenerator(logger logger.Logger) *ChaCha20Poly1305KeyGenerator {
	return &ChaCha20Poly1305KeyGenerator{random: rand.Reader, logger: logger}
}

// Generate returns the 32-byte key followed by the 12-byte nonce.
func (g *ChaCha20Poly1305KeyGenerator) Generate() ([][]byte, error) {
	key, err := randomBytes(g.random, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate chacha20poly1305 key: %w", err)
	}
	nonce, err := randomBytes(g.random, chacha20poly1305.NonceSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate chacha20poly1305 nonce: %w", err)
	}

	g.logger.Info("Generated ChaCha20-Poly1305 key and nonce")
	return [][]byte{key, nonce}, nil
}
