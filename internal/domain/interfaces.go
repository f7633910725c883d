package domain

import "context"

// IdentityStore persists the long-term key pair encrypted at rest.
type IdentityStore interface {
	SaveIdentity(passphrase string, id Identity) error
	LoadIdentity(passphrase string) (Identity, error)
}

// ProfileStore keeps the anonymous relay handle between invocations.
type ProfileStore interface {
	SaveProfile(p Profile) error
	LoadProfile() (Profile, bool, error)
}

// RelayClient is how the client talks to the relay server.
type RelayClient interface {
	// RegisterKey publishes a public key and returns the anonymous ID the
	// relay minted for it.
	RegisterKey(ctx context.Context, publicKey []byte) (string, error)

	// FetchKey returns the public key registered under userID.
	FetchKey(ctx context.Context, userID string) ([]byte, error)

	// SubmitMessage posts an envelope for recipientID and returns the
	// message ID under which the relay stored it. expirationMinutes
	// shortens the relay's retention window; zero means the default.
	SubmitMessage(ctx context.Context, recipientID string, env EncryptedMessage, expirationMinutes int) (string, error)

	// FetchMessage retrieves an envelope by ID. The second return is false
	// when the message is unknown, expired, or already consumed; the
	// three cases are indistinguishable on purpose.
	FetchMessage(ctx context.Context, messageID string, deleteAfterRead bool) (EncryptedMessage, bool, error)

	// MarkRead acknowledges a message fetched with deleteAfterRead=false.
	MarkRead(ctx context.Context, messageID string) error

	// Health checks that the relay is reachable and operational.
	Health(ctx context.Context) error
}
