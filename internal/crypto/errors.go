package crypto

import "errors"

var (
	// ErrInvalidKey is returned when peer key material is malformed,
	// off-curve, or on the wrong curve.
	ErrInvalidKey = errors.New("invalid key")

	// ErrAuthenticationFailed is returned when an AEAD open fails. It is
	// the same value for a wrong key, tampered ciphertext, and a corrupt
	// nonce; callers must not try to distinguish them.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidKeySize is returned when a symmetric key is not 32 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when a nonce is not 12 bytes.
	ErrInvalidNonceSize = errors.New("invalid nonce size")
)
