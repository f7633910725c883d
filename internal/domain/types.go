package domain

import "time"

// DeliveryStatus tracks the relay-side lifecycle of a stored message.
type DeliveryStatus string

const (
	// StatusPending means the message is stored and has not been fetched.
	StatusPending DeliveryStatus = "pending"
	// StatusDelivered means the message has been fetched at least once.
	StatusDelivered DeliveryStatus = "delivered"
	// StatusRead means the recipient explicitly acknowledged the message.
	StatusRead DeliveryStatus = "read"
)

// EncryptedMessage is the wire envelope produced by the encryption engine.
//
// EphemeralKey is the sender's single-use public key; the matching private
// key is discarded immediately after encryption and never appears anywhere.
// ExpiresAt is a millisecond timestamp, zero when the sender requested no
// self-destruct window. It is fixed at creation and never mutated.
type EncryptedMessage struct {
	MessageID     string `json:"messageId"`
	EncryptedData []byte `json:"encryptedData"`
	IV            []byte `json:"iv"`
	EphemeralKey  []byte `json:"ephemeralKey"`
	Timestamp     int64  `json:"timestamp"`
	ExpiresAt     int64  `json:"expiresAt,omitempty"`
}

// Expired reports whether the envelope's self-destruct deadline has passed.
func (m EncryptedMessage) Expired(nowMillis int64) bool {
	return m.ExpiresAt != 0 && nowMillis > m.ExpiresAt
}

// RelayEntry is the relay's copy of one envelope. It carries no sender or
// recipient identity; the only key into it is the random message ID.
type RelayEntry struct {
	MessageID        string
	EncryptedPayload []byte
	IV               []byte
	EphemeralKey     []byte
	CreatedAt        int64
	ExpiresAt        int64
	DeliveryStatus   DeliveryStatus
}

// KeyRegistration binds a server-minted anonymous ID to a public key.
// The ID has no relationship to any account, name, or network address.
type KeyRegistration struct {
	AnonymousID string
	PublicKey   []byte
	LastSeen    int64
}

// Identity holds the long-term P-256 key pair stored locally.
type Identity struct {
	PrivateKey []byte `json:"private_key"`
	PublicKey  []byte `json:"public_key"`
}

// Profile records the client's relay registration between CLI invocations.
// Everything in it is public or already known to the relay.
type Profile struct {
	UserID   string `json:"user_id"`
	RelayURL string `json:"relay_url"`
}

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// NowMillis returns the current time in milliseconds since the epoch,
// the unit used on every envelope and relay entry.
func NowMillis() int64 { return time.Now().UnixMilli() }
