package cryptoalg

import "io"

// Signer produces a signature over the full contents of a byte stream.
// Implementations never mutate their key material.
type Signer interface {
	// Sign consumes r until EOF and returns the signature bytes.
	Sign(r io.Reader) ([]byte, error)
}

// Verifier checks a signature against the full contents of a byte stream.
type Verifier interface {
	// Verify consumes r until EOF and reports whether signature is valid for it.
	// A cryptographic mismatch is reported as false with a nil error.
	Verify(r io.Reader, signature []byte) (bool, error)
}

// Encrypter seals the full contents of a byte stream.
type Encrypter interface {
	// Encrypt consumes r until EOF and returns the ciphertext including the authentication tag.
	Encrypt(r io.Reader) ([]byte, error)
}

// Decrypter opens a ciphertext produced by the matching Encrypter.
type Decrypter interface {
	// Decrypt consumes r until EOF and returns the plaintext.
	// No plaintext is returned when authentication fails.
	Decrypt(r io.Reader) ([]byte, error)
}

// KeyGenerator produces fresh key material as positional blobs.
//
// The order of the returned blobs is part of the contract:
//   - blake3: [key]
//   - ed25519: [seed, public key]
//   - chacha20poly1305: [key, nonce]
type KeyGenerator interface {
	Generate() ([][]byte, error)
}

// SignVerifier is implemented by symmetric signing schemes
// where one key both signs and verifies.
type SignVerifier interface {
	Signer
	Verifier
}

// Cipher is implemented by authenticated symmetric ciphers.
type Cipher interface {
	Encrypter
	Decrypter
}
