package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealbox/internal/domain"
	"sealbox/internal/store"
)

func TestIdentity_SaveLoad(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	id := domain.Identity{
		PrivateKey: []byte{1, 2, 3, 4},
		PublicKey:  []byte{5, 6, 7, 8},
	}
	require.NoError(t, s.SaveIdentity("correct horse", id))

	got, err := s.LoadIdentity("correct horse")
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestIdentity_WrongPassphrase(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	require.NoError(t, s.SaveIdentity("correct", domain.Identity{PrivateKey: []byte{1}}))

	_, err := s.LoadIdentity("wrong")
	assert.ErrorIs(t, err, store.ErrBadPassphrase)
}

func TestIdentity_MissingFile(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	_, err := s.LoadIdentity("whatever")
	assert.Error(t, err)
}

func TestProfile_RoundTrip(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	_, found, err := s.LoadProfile()
	require.NoError(t, err)
	assert.False(t, found)

	p := domain.Profile{UserID: "anon-123", RelayURL: "http://127.0.0.1:8080"}
	require.NoError(t, s.SaveProfile(p))

	got, found, err := s.LoadProfile()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, p, got)
}
