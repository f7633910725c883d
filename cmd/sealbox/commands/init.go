package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealbox/internal/engine"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate identity keys and store them encrypted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			eng, err := engine.New()
			if err != nil {
				return err
			}
			if err := wire.Identity.SaveIdentity(passphrase, eng.Identity()); err != nil {
				return err
			}
			fmt.Printf("Identity created.\nFingerprint: %s\n", eng.Fingerprint())
			return nil
		},
	}
}
