package crypto_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealbox/internal/crypto"
)

// sealedMessage seals plaintext under a fresh key/nonce for tamper tests.
func sealedMessage(t *testing.T, plaintext []byte) (key, nonce, ct []byte) {
	t.Helper()
	key = bytes.Repeat([]byte{0x42}, crypto.KeyBytes)
	nonce, err := crypto.NewNonce()
	require.NoError(t, err)
	ct, err = crypto.Seal(key, nonce, plaintext)
	require.NoError(t, err)
	return key, nonce, ct
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key, nonce, ct := sealedMessage(t, []byte("attorney-client privileged"))

	pt, err := crypto.Open(key, nonce, ct)
	require.NoError(t, err)
	assert.Equal(t, []byte("attorney-client privileged"), pt)
}

func TestOpen_TamperedCiphertext(t *testing.T) {
	key, nonce, ct := sealedMessage(t, []byte("hello"))

	for i := range ct {
		mangled := append([]byte(nil), ct...)
		mangled[i] ^= 0x01
		_, err := crypto.Open(key, nonce, mangled)
		assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
	}
}

func TestOpen_CorruptNonce(t *testing.T) {
	key, nonce, ct := sealedMessage(t, []byte("hello"))

	nonce[0] ^= 0x01
	_, err := crypto.Open(key, nonce, ct)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
}

func TestOpen_WrongKey(t *testing.T) {
	_, nonce, ct := sealedMessage(t, []byte("hello"))

	wrong := bytes.Repeat([]byte{0x43}, crypto.KeyBytes)
	_, err := crypto.Open(wrong, nonce, ct)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
}

func TestSeal_RejectsBadSizes(t *testing.T) {
	nonce, err := crypto.NewNonce()
	require.NoError(t, err)

	_, err = crypto.Seal(make([]byte, 16), nonce, []byte("x"))
	assert.ErrorIs(t, err, crypto.ErrInvalidKeySize)

	_, err = crypto.Seal(make([]byte, crypto.KeyBytes), nonce[:8], []byte("x"))
	assert.ErrorIs(t, err, crypto.ErrInvalidNonceSize)
}

func TestNewNonce_Unique(t *testing.T) {
	a, err := crypto.NewNonce()
	require.NoError(t, err)
	b, err := crypto.NewNonce()
	require.NoError(t, err)

	assert.Len(t, a, crypto.NonceBytes)
	assert.NotEqual(t, a, b)
}
