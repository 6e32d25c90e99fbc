package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DoyleJ11/sosphone-backend/internal/conf"
	"github.com/DoyleJ11/sosphone-backend/internal/phone"
)

var errNoDevice = errors.New("--device is required")

func numberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "number",
		Short: "Read or change the stored SOS number of a device",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deviceID == "" {
				return errNoDevice
			}
			return cmd.Root().PersistentPreRunE(cmd, args)
		},
	}
	cmd.AddCommand(numberGetCmd(), numberSetCmd(), numberResetCmd())
	return cmd
}

func controller() *conf.Controller {
	return conf.NewController(deviceStore(), phone.NewValidator(), cfg.Region, nil)
}

func numberGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the stored number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, ok, err := controller().LoadStoredNumber(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no number configured")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func numberSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <number>",
		Short: "Validate and store a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := controller().Submit(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("set %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "stored")
			return nil
		},
	}
}

func numberResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the stored number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := controller().Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "cleared")
			return nil
		},
	}
}
