// Package main runs the sealbox relay server.
//
// Configuration comes from a YAML file (default relay.yaml, overridable
// via --config or RELAY_CONFIG, with an optional .env loaded first):
//
//	listen_addr: ":8080"
//	sweep_minutes: 5
//	default_ttl_hours: 24
//	log_level: info
//
// The relay holds everything in memory and loses it on restart, on
// purpose: it is an untrusted middleman that stores ciphertext blobs
// under random IDs, purges them on expiry or first read, and never
// learns plaintext, identities, or addresses.
package main
