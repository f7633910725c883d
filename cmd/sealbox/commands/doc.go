// Package commands implements the sealbox CLI.
//
// Typical flow:
//
//	sealbox init -p <passphrase>
//	sealbox register --relay http://127.0.0.1:8080 -p <passphrase>
//	sealbox send <recipient-id> "hello" -p <passphrase>
//	sealbox recv <message-id> -p <passphrase>
//
// The relay only ever sees ciphertext, single-use public keys, and
// random IDs; message IDs are exchanged out of band.
package commands
