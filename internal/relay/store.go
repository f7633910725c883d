package relay

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"sealbox/internal/crypto"
	"sealbox/internal/domain"
)

const (
	// DefaultTTL bounds how long the relay holds an undelivered message.
	DefaultTTL = 24 * time.Hour
	// DefaultSweepInterval is how often expired entries are purged.
	DefaultSweepInterval = 5 * time.Minute
)

// StoreConfig configures a Store. Zero values take the defaults above.
type StoreConfig struct {
	DefaultTTL    time.Duration
	SweepInterval time.Duration
	Logger        *logrus.Logger
}

// Store is the relay's transient state: ciphertext envelopes keyed by
// random message ID and a public-key registry keyed by random anonymous
// ID. Everything lives in process memory and is intentionally lost on
// restart.
//
// Logging policy: only message IDs, anonymous IDs, and counts are ever
// logged. Never payloads, keys, or remote addresses.
type Store struct {
	cfg StoreConfig
	log *logrus.Logger

	mu       sync.Mutex
	messages map[string]*domain.RelayEntry
	keys     map[string]domain.KeyRegistration

	sweepDone chan struct{}
	closeOnce sync.Once
}

// NewStore builds a store and starts its background sweep.
func NewStore(cfg StoreConfig) *Store {
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = DefaultTTL
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}

	s := &Store{
		cfg:       cfg,
		log:       cfg.Logger,
		messages:  make(map[string]*domain.RelayEntry),
		keys:      make(map[string]domain.KeyRegistration),
		sweepDone: make(chan struct{}),
	}
	go s.sweepLoop()
	return s
}

// StoreMessage inserts an entry. A missing ExpiresAt defaults to
// CreatedAt plus the store TTL; a requested deadline is capped at the
// TTL so nothing outlives the retention bound.
func (s *Store) StoreMessage(e domain.RelayEntry) domain.RelayEntry {
	if e.MessageID == "" {
		e.MessageID = crypto.NewMessageID()
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = domain.NowMillis()
	}
	maxExpiry := e.CreatedAt + s.cfg.DefaultTTL.Milliseconds()
	if e.ExpiresAt == 0 || e.ExpiresAt > maxExpiry {
		e.ExpiresAt = maxExpiry
	}
	e.DeliveryStatus = domain.StatusPending

	s.mu.Lock()
	s.messages[e.MessageID] = &e
	total := len(s.messages)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"messageId": e.MessageID,
		"stored":    total,
	}).Debug("message stored")
	return e
}

// GetMessage returns the entry for messageID, or nil when it is unknown
// or already past its deadline. Lazy expiry is authoritative: an expired
// entry the sweep has not reached yet is treated as gone and removed.
//
// On success the entry is marked delivered. With deleteAfterRead the
// removal happens inside the same critical section as the lookup, so at
// most one caller can ever receive a given message.
func (s *Store) GetMessage(messageID string, deleteAfterRead bool) *domain.RelayEntry {
	now := domain.NowMillis()

	s.mu.Lock()
	e, ok := s.messages[messageID]
	if !ok {
		s.mu.Unlock()
		return nil
	}
	if now > e.ExpiresAt {
		delete(s.messages, messageID)
		s.mu.Unlock()
		return nil
	}
	e.DeliveryStatus = domain.StatusDelivered
	out := *e
	if deleteAfterRead {
		delete(s.messages, messageID)
	}
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"messageId": messageID,
		"deleted":   deleteAfterRead,
	}).Debug("message delivered")
	return &out
}

// MarkRead moves a delivered entry to read. It reports false for unknown
// or expired IDs; expiry deletion is terminal, not a delivery event.
func (s *Store) MarkRead(messageID string) bool {
	now := domain.NowMillis()

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.messages[messageID]
	if !ok || now > e.ExpiresAt {
		return false
	}
	e.DeliveryStatus = domain.StatusRead
	return true
}

// RegisterKey stores a public key and mints a fresh anonymous ID for it.
// Every registration gets a new ID: a returning participant that wants a
// stable handle keeps using the one it already has, and the relay never
// learns that two registrations belong to the same party.
func (s *Store) RegisterKey(publicKey []byte) string {
	reg := domain.KeyRegistration{
		AnonymousID: crypto.NewAnonymousID(),
		PublicKey:   append([]byte(nil), publicKey...),
		LastSeen:    domain.NowMillis(),
	}

	s.mu.Lock()
	s.keys[reg.AnonymousID] = reg
	total := len(s.keys)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"userId":     reg.AnonymousID,
		"registered": total,
	}).Debug("key registered")
	return reg.AnonymousID
}

// GetKey returns the public key for anonymousID, or nil when unknown.
// Fetches do not touch LastSeen; only registration does.
func (s *Store) GetKey(anonymousID string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, ok := s.keys[anonymousID]
	if !ok {
		return nil
	}
	return append([]byte(nil), reg.PublicKey...)
}

// Counts reports how many messages and keys are currently held.
func (s *Store) Counts() (messages, keys int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages), len(s.keys)
}

// Close stops the sweep and drops all state.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.sweepDone)
		s.mu.Lock()
		s.messages = make(map[string]*domain.RelayEntry)
		s.keys = make(map[string]domain.KeyRegistration)
		s.mu.Unlock()
	})
}

// sweepLoop purges expired entries on a fixed interval. The sweep is an
// optimization that bounds how long expired ciphertext lingers; lazy
// checks in GetMessage remain the authoritative expiry mechanism.
func (s *Store) sweepLoop() {
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.sweepDone:
			return
		case <-ticker.C:
			if n := s.sweepOnce(); n > 0 {
				s.log.WithField("purged", n).Info("sweep removed expired messages")
			}
		}
	}
}

func (s *Store) sweepOnce() int {
	now := domain.NowMillis()

	s.mu.Lock()
	defer s.mu.Unlock()
	purged := 0
	for id, e := range s.messages {
		if now > e.ExpiresAt {
			delete(s.messages, id)
			purged++
		}
	}
	return purged
}
