// Package relay implements the sealbox message relay: a transient,
// minimal-metadata store-and-forward service, its HTTP API, and the
// client used to talk to it.
//
// HTTP API
//
//	POST /relay/messages
//	    Store a ciphertext envelope for a registered recipient. Returns
//	    the message ID under which it can be fetched.
//
//	GET /relay/messages/{id}?deleteAfterRead=true|false
//	    Return an envelope. With deleteAfterRead (the default) the entry
//	    is removed atomically with the lookup, so a message can be
//	    fetched successfully at most once. 404 covers unknown, expired,
//	    and already-consumed IDs alike.
//
//	POST /relay/messages/{id}/read
//	    Mark a kept (deleteAfterRead=false) message as read.
//
//	POST /relay/keys
//	    Register a public key; returns a freshly minted anonymous ID.
//
//	GET /relay/keys/{id}
//	    Return the public key registered under an anonymous ID.
//
//	GET /relay/health
//	    Liveness probe.
//
// Behaviour
//
//   - All state is held in memory and intentionally lost on restart.
//   - Entries expire after at most 24 hours; a background sweep purges
//     them and a lazy check on fetch treats unswept expired entries as
//     already gone.
//   - The relay never sees plaintext or private keys, stores no sender
//     or recipient identity, and logs only opaque IDs and counts.
package relay
