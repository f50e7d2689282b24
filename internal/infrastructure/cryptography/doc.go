// Package cryptography implements the capability contracts of package cryptoalg:
// BLAKE3 keyed hashing, Ed25519 signatures and ChaCha20-Poly1305 authenticated encryption,
// together with their key loaders and generators.
package cryptography
