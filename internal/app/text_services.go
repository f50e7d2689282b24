// Package app routes text commands to the algorithm selected by the caller.
package app

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MGTheTrain/crypto-text/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-text/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-text/internal/pkg/config"
	"github.com/MGTheTrain/crypto-text/internal/pkg/input"
	"github.com/MGTheTrain/crypto-text/internal/pkg/logger"
)

// TextService signs, verifies, encrypts and decrypts text input.
// It keeps no state between calls: key material is loaded per call from the given paths.
type TextService struct {
	settings config.TextSettings
	source   *input.Source
	logger   logger.Logger
}

// NewTextService creates a TextService reading input through source.
func NewTextService(settings *config.TextSettings, source *input.Source, logger logger.Logger) (*TextService, error) {
	if settings == nil {
		return nil, fmt.Errorf("text settings cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, fmt.Errorf("input source cannot be nil")
	}

	return &TextService{
		settings: *settings,
		source:   source,
		logger:   logger,
	}, nil
}

// readMessage loads the input and applies the whitespace trimming of earlier releases when enabled.
func (s *TextService) readMessage(inputPath string) ([]byte, error) {
	data, err := s.source.ReadAll(inputPath)
	if err != nil {
		return nil, err
	}
	if s.settings.TrimInput {
		data = bytes.TrimSpace(data)
	}
	return data, nil
}

// Sign signs the input with the key at keyPath and returns the signature as text.
func (s *TextService) Sign(ctx context.Context, inputPath, keyPath string, algorithm cryptoalg.Algorithm) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !algorithm.CanSign() {
		return "", fmt.Errorf("%w: %s cannot sign", cryptoalg.ErrUnsupportedOperation, algorithm)
	}

	signer, err := s.loadSigner(keyPath, algorithm)
	if err != nil {
		return "", fmt.Errorf("failed to load %s signing key %s: %w", algorithm, keyPath, err)
	}

	message, err := s.readMessage(inputPath)
	if err != nil {
		return "", err
	}

	signature, err := signer.Sign(bytes.NewReader(message))
	if err != nil {
		return "", fmt.Errorf("failed to sign with %s: %w", algorithm, err)
	}

	return EncodeText(signature), nil
}

// Verify checks signature text against the input using the key at keyPath.
// A mismatch is reported as false; only format and I/O problems are errors.
func (s *TextService) Verify(ctx context.Context, inputPath, keyPath string, algorithm cryptoalg.Algorithm, signature string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if !algorithm.CanSign() {
		return false, fmt.Errorf("%w: %s cannot verify", cryptoalg.ErrUnsupportedOperation, algorithm)
	}

	sig, err := DecodeText(signature)
	if err != nil {
		return false, fmt.Errorf("failed to decode %s signature: %w", algorithm, err)
	}

	verifier, err := s.loadVerifier(keyPath, algorithm)
	if err != nil {
		return false, fmt.Errorf("failed to load %s verifying key %s: %w", algorithm, keyPath, err)
	}

	message, err := s.readMessage(inputPath)
	if err != nil {
		return false, err
	}

	valid, err := verifier.Verify(bytes.NewReader(message), sig)
	if err != nil {
		return false, fmt.Errorf("failed to verify with %s: %w", algorithm, err)
	}

	return valid, nil
}

// Generate produces fresh key material for algorithm as positional blobs.
func (s *TextService) Generate(ctx context.Context, algorithm cryptoalg.Algorithm) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var generator cryptoalg.KeyGenerator
	switch algorithm {
	case cryptoalg.AlgorithmBlake3:
		g, err := cryptography.NewBlake3KeyGenerator(s.settings.Blake3KeyMode, s.logger)
		if err != nil {
			return nil, err
		}
		generator = g
	case cryptoalg.AlgorithmEd25519:
		generator = cryptography.NewEd25519KeyGenerator(s.logger)
	case cryptoalg.AlgorithmChaCha20Poly1305:
		generator = cryptography.NewChaCha20Poly1305KeyGenerator(s.logger)
	default:
		return nil, fmt.Errorf("%w: %q", cryptoalg.ErrUnsupportedAlgorithm, algorithm)
	}

	blobs, err := generator.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s key material: %w", algorithm, err)
	}
	return blobs, nil
}

// Encrypt seals the input with the key and nonce files and returns the ciphertext as text.
func (s *TextService) Encrypt(ctx context.Context, inputPath, keyPath, noncePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cipher, err := s.loadCipher(keyPath, noncePath)
	if err != nil {
		return "", err
	}

	plaintext, err := s.readMessage(inputPath)
	if err != nil {
		return "", err
	}

	ciphertext, err := cipher.Encrypt(bytes.NewReader(plaintext))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt with %s: %w", cryptoalg.AlgorithmChaCha20Poly1305, err)
	}

	return EncodeText(ciphertext), nil
}

// Decrypt opens ciphertext text read from the input with the key and nonce files.
func (s *TextService) Decrypt(ctx context.Context, inputPath, keyPath, noncePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cipher, err := s.loadCipher(keyPath, noncePath)
	if err != nil {
		return nil, err
	}

	text, err := s.source.ReadAll(inputPath)
	if err != nil {
		return nil, err
	}

	ciphertext, err := DecodeText(string(text))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s ciphertext: %w", cryptoalg.AlgorithmChaCha20Poly1305, err)
	}

	plaintext, err := cipher.Decrypt(bytes.NewReader(ciphertext))
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt with %s key %s: %w", cryptoalg.AlgorithmChaCha20Poly1305, keyPath, err)
	}

	return plaintext, nil
}

func (s *TextService) loadSigner(keyPath string, algorithm cryptoalg.Algorithm) (cryptoalg.Signer, error) {
	switch algorithm {
	case cryptoalg.AlgorithmBlake3:
		return cryptography.LoadBlake3Processor(keyPath, s.logger)
	case cryptoalg.AlgorithmEd25519:
		return cryptography.LoadEd25519Signer(keyPath, s.logger)
	default:
		return nil, fmt.Errorf("%w: %s cannot sign", cryptoalg.ErrUnsupportedOperation, algorithm)
	}
}

func (s *TextService) loadVerifier(keyPath string, algorithm cryptoalg.Algorithm) (cryptoalg.Verifier, error) {
	switch algorithm {
	case cryptoalg.AlgorithmBlake3:
		return cryptography.LoadBlake3Processor(keyPath, s.logger)
	case cryptoalg.AlgorithmEd25519:
		return cryptography.LoadEd25519Verifier(keyPath, s.logger)
	default:
		return nil, fmt.Errorf("%w: %s cannot verify", cryptoalg.ErrUnsupportedOperation, algorithm)
	}
}

func (s *TextService) loadCipher(keyPath, noncePath string) (cryptoalg.Cipher, error) {
	cipher, err := cryptography.LoadChaCha20Poly1305Processor(keyPath, noncePath, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s key %s and nonce %s: %w", cryptoalg.AlgorithmChaCha20Poly1305, keyPath, noncePath, err)
	}
	return cipher, nil
}
