// Package cryptoalg defines the capability contracts for the text processing subsystem,
// such as signing, verification, encryption, decryption and key generation, together with
// the algorithm tags used to select a concrete implementation.
package cryptoalg
