// Package engine is the client-side contract of sealbox: per-message
// ephemeral-key encryption, uniform-failure decryption, and local
// self-destruct timers.
//
// Forward secrecy comes from the ephemeral key: every Encrypt call uses a
// key pair that exists only for that call, so captured ciphertext cannot
// be decrypted later even if the sender is compromised. A compromised
// recipient long-term key still decrypts everything sent to it; that is a
// documented limitation, not a gap a ratchet quietly papers over.
package engine
