package cryptoalg

import "errors"

var (
	// ErrInvalidKeyLength is returned when key material has the wrong byte count.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidNonceLength is returned when a nonce has the wrong byte count.
	ErrInvalidNonceLength = errors.New("invalid nonce length")

	// ErrInvalidSignature is returned when a signature cannot be parsed into its fixed-length shape.
	ErrInvalidSignature = errors.New("invalid signature format")

	// ErrInvalidEncoding is returned when signature or ciphertext text is not valid base64.
	ErrInvalidEncoding = errors.New("invalid text encoding")

	// ErrDecryptionFailed is returned when authenticated decryption fails.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrUnsupportedAlgorithm is returned for unknown algorithm tags.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrUnsupportedOperation is returned when an algorithm does not offer the requested capability.
	ErrUnsupportedOperation = errors.New("operation not supported by algorithm")
)
