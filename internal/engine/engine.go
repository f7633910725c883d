package engine

import (
	"crypto/ecdh"
	"fmt"

	"sealbox/internal/crypto"
	"sealbox/internal/domain"
	"sealbox/internal/util/memzero"
)

// DefaultExpirationMinutes is the self-destruct window applied when the
// sender asks for self-destruct without naming a duration.
const DefaultExpirationMinutes = 60

// Options control per-message behaviour of Encrypt.
type Options struct {
	// SelfDestruct stamps the envelope with an expiry deadline.
	SelfDestruct bool
	// ExpirationMinutes is the self-destruct window; zero means
	// DefaultExpirationMinutes. Ignored unless SelfDestruct is set.
	ExpirationMinutes int
}

// Engine encrypts and decrypts envelopes with a per-message ephemeral key.
//
// The long-term private key is set once at construction and read-only
// afterwards, so concurrent Encrypt/Decrypt calls are safe.
type Engine struct {
	priv *ecdh.PrivateKey
	pub  []byte
}

// New generates a fresh long-term key pair and returns an engine holding
// it. The private key exists only in process memory.
func New() (*Engine, error) {
	priv, err := crypto.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	return &Engine{priv: priv, pub: priv.PublicKey().Bytes()}, nil
}

// NewFromIdentity restores an engine from a persisted long-term key pair.
func NewFromIdentity(id domain.Identity) (*Engine, error) {
	priv, err := ecdh.P256().NewPrivateKey(id.PrivateKey)
	if err != nil {
		return nil, crypto.ErrInvalidKey
	}
	return &Engine{priv: priv, pub: priv.PublicKey().Bytes()}, nil
}

// PublicKey returns the exportable long-term public key for registration.
func (e *Engine) PublicKey() []byte {
	return append([]byte(nil), e.pub...)
}

// Identity returns the key pair for encrypted persistence.
func (e *Engine) Identity() domain.Identity {
	return domain.Identity{
		PrivateKey: e.priv.Bytes(),
		PublicKey:  e.PublicKey(),
	}
}

// Fingerprint returns a short fingerprint of the long-term public key.
func (e *Engine) Fingerprint() domain.Fingerprint {
	return domain.Fingerprint(crypto.Fingerprint(e.pub))
}

// Encrypt seals plaintext to recipientPub under a single-use ephemeral key.
//
// Each call generates a fresh ephemeral pair, derives the message key from
// ephemeral-private + recipient-public, draws a fresh nonce and a random
// message ID, and discards the ephemeral private key before returning.
// Encrypting identical input twice yields distinct ciphertext, nonce,
// ephemeral key, and message ID.
func (e *Engine) Encrypt(plaintext string, recipientPub []byte, opts Options) (domain.EncryptedMessage, error) {
	eph, err := crypto.GenerateKeyPair()
	if err != nil {
		return domain.EncryptedMessage{}, err
	}

	key, err := crypto.DeriveSharedKey(eph, recipientPub)
	if err != nil {
		return domain.EncryptedMessage{}, fmt.Errorf("encrypt: %w", err)
	}
	defer memzero.Zero(key)

	nonce, err := crypto.NewNonce()
	if err != nil {
		return domain.EncryptedMessage{}, err
	}
	ct, err := crypto.Seal(key, nonce, []byte(plaintext))
	if err != nil {
		return domain.EncryptedMessage{}, err
	}

	now := domain.NowMillis()
	env := domain.EncryptedMessage{
		MessageID:     crypto.NewMessageID(),
		EncryptedData: ct,
		IV:            nonce,
		EphemeralKey:  eph.PublicKey().Bytes(),
		Timestamp:     now,
	}
	if opts.SelfDestruct {
		minutes := opts.ExpirationMinutes
		if minutes <= 0 {
			minutes = DefaultExpirationMinutes
		}
		env.ExpiresAt = now + int64(minutes)*60_000
	}
	return env, nil
}

// Decrypt recovers the plaintext of an envelope addressed to this engine's
// long-term key.
//
// It returns ok=false for an expired envelope without touching the
// ciphertext, and ok=false for any malformed envelope, foreign key, or
// failed authentication. The failure cases are indistinguishable: no
// error detail, no logging, same return shape.
func (e *Engine) Decrypt(env domain.EncryptedMessage) (plaintext string, ok bool) {
	if env.Expired(domain.NowMillis()) {
		return "", false
	}

	key, err := crypto.DeriveSharedKey(e.priv, env.EphemeralKey)
	if err != nil {
		return "", false
	}
	defer memzero.Zero(key)

	pt, err := crypto.Open(key, env.IV, env.EncryptedData)
	if err != nil {
		return "", false
	}
	return string(pt), true
}
