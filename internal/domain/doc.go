// Package domain defines the wire and storage types shared by the client
// engine and the relay, plus the interfaces the client is wired against.
//
// The types deliberately carry minimal metadata: envelopes and relay
// entries are keyed by random message IDs, key registrations by random
// anonymous IDs, and nothing links either to a person, an account, or a
// network address.
package domain
