package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print your identity fingerprint and anonymous ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine()
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n", eng.Fingerprint())

			if p, err := loadProfile(); err == nil {
				fmt.Printf("Anonymous ID: %s\n", p.UserID)
			}
			return nil
		},
	}
}
