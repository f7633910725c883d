package crypto

import (
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
)

// NewMessageID returns a random 128-bit token. It is independent of
// message content and participant identity.
func NewMessageID() string { return uuid.NewString() }

// NewAnonymousID returns a random 128-bit token for key registrations.
func NewAnonymousID() string { return uuid.NewString() }

// NewNonce returns a fresh random 96-bit AES-GCM nonce.
func NewNonce() ([]byte, error) {
	nonce := make([]byte, NonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}
	return nonce, nil
}
