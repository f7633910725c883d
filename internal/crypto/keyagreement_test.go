package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealbox/internal/crypto"
)

func TestDeriveSharedKey_BothDirectionsAgree(t *testing.T) {
	alice, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	bob, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	ab, err := crypto.DeriveSharedKey(alice, bob.PublicKey().Bytes())
	require.NoError(t, err)
	ba, err := crypto.DeriveSharedKey(bob, alice.PublicKey().Bytes())
	require.NoError(t, err)

	assert.Equal(t, ab, ba)
	assert.Len(t, ab, crypto.KeyBytes)
}

func TestDeriveSharedKey_NotRawECDHOutput(t *testing.T) {
	alice, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	bob, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	key, err := crypto.DeriveSharedKey(alice, bob.PublicKey().Bytes())
	require.NoError(t, err)

	pub, err := crypto.ImportPublicKey(bob.PublicKey().Bytes())
	require.NoError(t, err)
	raw, err := alice.ECDH(pub)
	require.NoError(t, err)

	assert.NotEqual(t, raw, key, "derived key must go through the KDF binding step")
}

func TestDeriveSharedKey_MalformedPeerKey(t *testing.T) {
	alice, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	cases := map[string][]byte{
		"empty":        nil,
		"truncated":    alice.PublicKey().Bytes()[:30],
		"garbage":      {0x04, 0x01, 0x02, 0x03},
		"all zeroes":   make([]byte, 65),
		"not on curve": append([]byte{0x04}, make([]byte, 64)...),
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := crypto.DeriveSharedKey(alice, raw)
			assert.ErrorIs(t, err, crypto.ErrInvalidKey)
		})
	}
}

func TestImportPublicKey_RoundTrip(t *testing.T) {
	pair, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	pub, err := crypto.ImportPublicKey(pair.PublicKey().Bytes())
	require.NoError(t, err)
	assert.True(t, pub.Equal(pair.PublicKey()))
}

func TestFingerprint_Stable(t *testing.T) {
	pair, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	fp := crypto.Fingerprint(pair.PublicKey().Bytes())
	assert.Len(t, fp, 20)
	assert.Equal(t, fp, crypto.Fingerprint(pair.PublicKey().Bytes()))
}
