// Package crypto exposes the primitives used by sealbox.
//
// Contents
//
//   - P-256 key generation, public-key import and ECDH with an HKDF
//     binding step (GenerateKeyPair, ImportPublicKey, DeriveSharedKey)
//   - AES-256-GCM sealing and opening with caller-supplied nonces
//     (Seal, Open)
//   - Random nonces and 128-bit message/anonymous tokens (NewNonce,
//     NewMessageID, NewAnonymousID)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Notes
//
// DeriveSharedKey never hands back raw ECDH output: the shared secret is
// always run through HKDF-SHA-256 bound to the cipher suite before use.
// Open collapses every authentication failure into ErrAuthenticationFailed
// so callers cannot tell a wrong key from tampered ciphertext.
package crypto
