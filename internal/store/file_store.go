package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"sealbox/internal/domain"
	"sealbox/internal/util/memzero"
)

const (
	identityFile = "identity.enc"
	profileFile  = "profile.json"

	saltBytes = 16
	kekBytes  = 32
)

// ErrBadPassphrase is returned when the identity file cannot be opened
// with the given passphrase.
var ErrBadPassphrase = errors.New("wrong passphrase or corrupted identity file")

// FileStore keeps the long-term identity encrypted on disk and the relay
// profile as plain JSON next to it.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore stores under dir, which must already exist.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

var (
	_ domain.IdentityStore = (*FileStore)(nil)
	_ domain.ProfileStore  = (*FileStore)(nil)
)

// SaveIdentity encrypts id with a passphrase-derived key and writes
// salt || nonce || ciphertext with mode 0600.
func (s *FileStore) SaveIdentity(passphrase string, id domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return err
	}
	kek := deriveKEK(passphrase, salt)
	defer memzero.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return err
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return err
	}

	blob := append(append(salt, nonce...), aead.Seal(nil, nonce, raw, nil)...)
	return os.WriteFile(filepath.Join(s.dir, identityFile), blob, 0o600)
}

// LoadIdentity decrypts and returns the stored identity.
func (s *FileStore) LoadIdentity(passphrase string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(filepath.Join(s.dir, identityFile))
	if err != nil {
		return domain.Identity{}, fmt.Errorf("no identity found (run init first): %w", err)
	}
	if len(blob) < saltBytes+chacha20poly1305.NonceSize {
		return domain.Identity{}, ErrBadPassphrase
	}
	salt := blob[:saltBytes]
	nonce := blob[saltBytes : saltBytes+chacha20poly1305.NonceSize]
	ct := blob[saltBytes+chacha20poly1305.NonceSize:]

	kek := deriveKEK(passphrase, salt)
	defer memzero.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return domain.Identity{}, err
	}
	raw, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return domain.Identity{}, ErrBadPassphrase
	}
	defer memzero.Zero(raw)

	var id domain.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return domain.Identity{}, ErrBadPassphrase
	}
	return id, nil
}

// SaveProfile writes the relay profile. Nothing in it is secret.
func (s *FileStore) SaveProfile(p domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(filepath.Join(s.dir, profileFile), p, 0o600)
}

// LoadProfile reads the relay profile; ok is false when none exists.
func (s *FileStore) LoadProfile() (domain.Profile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p domain.Profile
	found, err := readJSON(filepath.Join(s.dir, profileFile), &p)
	return p, found, err
}

// deriveKEK derives a key-encryption key from a passphrase with Argon2id.
func deriveKEK(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, 1, 1<<16, 4, kekBytes)
}
