package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealbox/internal/domain"
	"sealbox/internal/engine"
)

// newEngine returns a fresh engine or fails the test.
func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.New()
	require.NoError(t, err)
	return e
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	alice := newEngine(t)
	bob := newEngine(t)

	env, err := alice.Encrypt("Need emergency consult", bob.PublicKey(), engine.Options{})
	require.NoError(t, err)

	pt, ok := bob.Decrypt(env)
	require.True(t, ok)
	assert.Equal(t, "Need emergency consult", pt)
}

func TestEncrypt_SameInputTwiceDiffers(t *testing.T) {
	alice := newEngine(t)
	bob := newEngine(t)

	a, err := alice.Encrypt("hello", bob.PublicKey(), engine.Options{})
	require.NoError(t, err)
	b, err := alice.Encrypt("hello", bob.PublicKey(), engine.Options{})
	require.NoError(t, err)

	assert.NotEqual(t, a.IV, b.IV)
	assert.NotEqual(t, a.EphemeralKey, b.EphemeralKey)
	assert.NotEqual(t, a.MessageID, b.MessageID)
	assert.NotEqual(t, a.EncryptedData, b.EncryptedData)

	// Both still decrypt.
	for _, env := range []domain.EncryptedMessage{a, b} {
		pt, ok := bob.Decrypt(env)
		require.True(t, ok)
		assert.Equal(t, "hello", pt)
	}
}

func TestDecrypt_WrongRecipient(t *testing.T) {
	alice := newEngine(t)
	bob := newEngine(t)
	eve := newEngine(t)

	env, err := alice.Encrypt("for bob only", bob.PublicKey(), engine.Options{})
	require.NoError(t, err)

	pt, ok := eve.Decrypt(env)
	assert.False(t, ok)
	assert.Empty(t, pt)
}

func TestDecrypt_TamperedEnvelope(t *testing.T) {
	alice := newEngine(t)
	bob := newEngine(t)

	env, err := alice.Encrypt("hello", bob.PublicKey(), engine.Options{})
	require.NoError(t, err)

	tampered := env
	tampered.EncryptedData = append([]byte(nil), env.EncryptedData...)
	tampered.EncryptedData[0] ^= 0x01
	_, ok := bob.Decrypt(tampered)
	assert.False(t, ok)

	tampered = env
	tampered.IV = append([]byte(nil), env.IV...)
	tampered.IV[0] ^= 0x01
	_, ok = bob.Decrypt(tampered)
	assert.False(t, ok)
}

func TestDecrypt_MalformedEnvelope(t *testing.T) {
	bob := newEngine(t)

	_, ok := bob.Decrypt(domain.EncryptedMessage{})
	assert.False(t, ok)

	_, ok = bob.Decrypt(domain.EncryptedMessage{
		EphemeralKey:  []byte{0x04, 0x01},
		IV:            make([]byte, 12),
		EncryptedData: []byte("junk"),
	})
	assert.False(t, ok)
}

func TestEncrypt_SelfDestructStamping(t *testing.T) {
	alice := newEngine(t)
	bob := newEngine(t)

	before := domain.NowMillis()
	env, err := alice.Encrypt("burn me", bob.PublicKey(), engine.Options{SelfDestruct: true, ExpirationMinutes: 5})
	require.NoError(t, err)
	after := domain.NowMillis()

	assert.GreaterOrEqual(t, env.Timestamp, before)
	assert.LessOrEqual(t, env.Timestamp, after)
	assert.Equal(t, env.Timestamp+5*60_000, env.ExpiresAt)

	// Omitted minutes default to 60.
	env, err = alice.Encrypt("burn me", bob.PublicKey(), engine.Options{SelfDestruct: true})
	require.NoError(t, err)
	assert.Equal(t, env.Timestamp+60*60_000, env.ExpiresAt)

	// No self-destruct, no deadline.
	env, err = alice.Encrypt("keep me", bob.PublicKey(), engine.Options{})
	require.NoError(t, err)
	assert.Zero(t, env.ExpiresAt)
}

func TestDecrypt_ExpiredReturnsNothing(t *testing.T) {
	alice := newEngine(t)
	bob := newEngine(t)

	env, err := alice.Encrypt("gone", bob.PublicKey(), engine.Options{SelfDestruct: true})
	require.NoError(t, err)

	// Valid ciphertext, passed deadline.
	env.ExpiresAt = domain.NowMillis() - 1
	pt, ok := bob.Decrypt(env)
	assert.False(t, ok)
	assert.Empty(t, pt)

	// Future deadline still decrypts.
	env.ExpiresAt = domain.NowMillis() + time.Minute.Milliseconds()
	pt, ok = bob.Decrypt(env)
	require.True(t, ok)
	assert.Equal(t, "gone", pt)
}

func TestNewFromIdentity_RestoresKeys(t *testing.T) {
	alice := newEngine(t)
	bob := newEngine(t)

	env, err := alice.Encrypt("persistent", bob.PublicKey(), engine.Options{})
	require.NoError(t, err)

	restored, err := engine.NewFromIdentity(bob.Identity())
	require.NoError(t, err)
	assert.Equal(t, bob.PublicKey(), restored.PublicKey())

	pt, ok := restored.Decrypt(env)
	require.True(t, ok)
	assert.Equal(t, "persistent", pt)
}

func TestNewFromIdentity_RejectsGarbage(t *testing.T) {
	_, err := engine.NewFromIdentity(domain.Identity{PrivateKey: []byte("nope")})
	assert.Error(t, err)
}
