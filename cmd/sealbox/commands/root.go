package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sealbox/internal/app"
	"sealbox/internal/domain"
	"sealbox/internal/engine"
)

var (
	home       string
	passphrase string
	relayURL   string

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:          "sealbox",
		Short:        "End-to-end encrypted messaging over an anonymous relay",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".sealbox")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			wire = app.NewWire(app.Config{Home: home, RelayURL: relayURL})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.sealbox)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the identity keys")
	root.PersistentFlags().StringVar(&relayURL, "relay", "", "relay base URL (e.g. http://127.0.0.1:8080)")

	root.AddCommand(initCmd(), registerCmd(), sendCmd(), recvCmd(), fingerprintCmd())
	return root.Execute()
}

// loadEngine restores the encryption engine from the stored identity.
func loadEngine() (*engine.Engine, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase required (-p)")
	}
	id, err := wire.Identity.LoadIdentity(passphrase)
	if err != nil {
		return nil, err
	}
	return engine.NewFromIdentity(id)
}

// requireRelay checks that --relay (or a saved profile) gave us a client.
func requireRelay() error {
	if wire.Relay == nil {
		// Fall back to the relay recorded at registration time.
		p, found, err := wire.Profile.LoadProfile()
		if err != nil {
			return err
		}
		if !found || p.RelayURL == "" {
			return fmt.Errorf("no relay configured, use --relay")
		}
		wire = app.NewWire(app.Config{Home: home, RelayURL: p.RelayURL})
	}
	return nil
}

// loadProfile returns the saved registration profile.
func loadProfile() (domain.Profile, error) {
	p, found, err := wire.Profile.LoadProfile()
	if err != nil {
		return domain.Profile{}, err
	}
	if !found {
		return domain.Profile{}, fmt.Errorf("not registered yet, run register first")
	}
	return p, nil
}
