package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealbox/internal/domain"
)

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Publish your public key and receive an anonymous ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			if relayURL == "" {
				return fmt.Errorf("no relay configured, use --relay")
			}
			eng, err := loadEngine()
			if err != nil {
				return err
			}

			userID, err := wire.Relay.RegisterKey(cmd.Context(), eng.PublicKey())
			if err != nil {
				return err
			}
			if err := wire.Profile.SaveProfile(domain.Profile{UserID: userID, RelayURL: relayURL}); err != nil {
				return err
			}

			fmt.Printf("Registered.\nYour ID: %s\nShare it with anyone who should message you.\n", userID)
			return nil
		},
	}
}
