package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DoyleJ11/sosphone-backend/internal/phone"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <number>",
		Short: "Check a phone number for the configured region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := phone.Parse(args[0], cfg.Region)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "invalid (%s): %v\n", cfg.Region, err)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid (%s): %s\n", n.Region, n.E164)
			return nil
		},
	}
	return cmd
}
