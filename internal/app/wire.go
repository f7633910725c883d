package app

import (
	"sealbox/internal/domain"
	"sealbox/internal/relay"
	"sealbox/internal/store"
)

// Wire bundles the stores and relay client for the CLI.
type Wire struct {
	Identity domain.IdentityStore
	Profile  domain.ProfileStore
	Relay    domain.RelayClient // nil when no relay URL is configured
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	fs := store.NewFileStore(cfg.Home)

	w := &Wire{
		Identity: fs,
		Profile:  fs,
	}
	if cfg.RelayURL != "" {
		w.Relay = relay.NewClient(cfg.RelayURL, cfg.HTTP)
	}
	return w
}
