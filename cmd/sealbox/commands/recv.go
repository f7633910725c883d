package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// recv <message-id>: fetch a message from the relay and decrypt it.
func recvCmd() *cobra.Command {
	var keep bool
	cmd := &cobra.Command{
		Use:   "recv <message-id>",
		Short: "Fetch and decrypt a message by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRelay(); err != nil {
				return err
			}
			eng, err := loadEngine()
			if err != nil {
				return err
			}
			messageID := args[0]

			env, ok, err := wire.Relay.FetchMessage(cmd.Context(), messageID, !keep)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("message unavailable")
				return nil
			}

			plaintext, ok := eng.Decrypt(env)
			if !ok {
				fmt.Println("message unavailable")
				return nil
			}
			fmt.Println(plaintext)

			if keep {
				// Best-effort read receipt; the message stays on the relay.
				_ = wire.Relay.MarkRead(cmd.Context(), messageID)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&keep, "keep", false, "leave the message on the relay after reading")
	return cmd
}
