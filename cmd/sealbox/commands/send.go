package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealbox/internal/engine"
)

// send <recipient-id> <message>: encrypt and post a message via the relay.
func sendCmd() *cobra.Command {
	var (
		selfDestruct  bool
		expireMinutes int
	)
	cmd := &cobra.Command{
		Use:   "send <recipient-id> <message>",
		Short: "Encrypt and send a message to a recipient's anonymous ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRelay(); err != nil {
				return err
			}
			eng, err := loadEngine()
			if err != nil {
				return err
			}
			recipientID, plaintext := args[0], args[1]

			recipientKey, err := wire.Relay.FetchKey(cmd.Context(), recipientID)
			if err != nil {
				return fmt.Errorf("fetch recipient key: %w", err)
			}

			env, err := eng.Encrypt(plaintext, recipientKey, engine.Options{
				SelfDestruct:      selfDestruct,
				ExpirationMinutes: expireMinutes,
			})
			if err != nil {
				return err
			}

			expiration := 0
			if selfDestruct {
				expiration = expireMinutes
				if expiration <= 0 {
					expiration = engine.DefaultExpirationMinutes
				}
			}
			messageID, err := wire.Relay.SubmitMessage(cmd.Context(), recipientID, env, expiration)
			if err != nil {
				return err
			}

			fmt.Printf("Sent.\nMessage ID: %s\n", messageID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&selfDestruct, "self-destruct", false, "give the message an expiry deadline")
	cmd.Flags().IntVar(&expireMinutes, "expire-minutes", 0, "self-destruct window in minutes (default 60)")
	return cmd
}
