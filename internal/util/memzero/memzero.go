// Package memzero wipes sensitive byte slices.
package memzero

import "crypto/subtle"

// Zero overwrites b with zeros. Using subtle keeps the write from being
// elided; this is best-effort and only shortens the lifetime of secrets
// in memory.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
