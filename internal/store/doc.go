// Package store persists client-side state under the home directory:
// the long-term key pair encrypted with a passphrase-derived key, and
// the anonymous relay profile as plain JSON.
package store
