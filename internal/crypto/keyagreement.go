package crypto

import (
	"crypto/ecdh"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"sealbox/internal/util/memzero"
)

const (
	// KeyBytes is the size of a derived AES-256 key.
	KeyBytes = 32
	// NonceBytes is the size of an AES-GCM nonce.
	NonceBytes = 12
	// TagBytes is the size of an AES-GCM authentication tag.
	TagBytes = 16
)

// kdfInfo binds derived keys to the cipher suite. A shared secret derived
// under this label is only ever usable as an AES-256-GCM key.
var kdfInfo = []byte("sealbox:aes-256-gcm:v1")

// GenerateKeyPair returns a fresh P-256 key pair for Diffie-Hellman.
// The keys carry no signing capability.
func GenerateKeyPair() (*ecdh.PrivateKey, error) {
	priv, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate key pair: %w", err)
	}
	return priv, nil
}

// ImportPublicKey parses an uncompressed P-256 point. Off-curve and
// wrong-curve material is rejected with ErrInvalidKey.
func ImportPublicKey(raw []byte) (*ecdh.PublicKey, error) {
	pub, err := ecdh.P256().NewPublicKey(raw)
	if err != nil {
		return nil, ErrInvalidKey
	}
	return pub, nil
}

// DeriveSharedKey runs ECDH between own and peerPub and binds the result
// to AES-256-GCM via HKDF-SHA-256. Both sides of a pair derive the same
// 32-byte key.
func DeriveSharedKey(own *ecdh.PrivateKey, peerPub []byte) ([]byte, error) {
	pub, err := ImportPublicKey(peerPub)
	if err != nil {
		return nil, err
	}
	secret, err := own.ECDH(pub)
	if err != nil {
		return nil, ErrInvalidKey
	}
	defer memzero.Zero(secret)

	key := make([]byte, KeyBytes)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, kdfInfo), key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}
