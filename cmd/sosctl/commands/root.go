package commands

import (
	"github.com/spf13/cobra"

	"github.com/DoyleJ11/sosphone-backend/internal/config"
	"github.com/DoyleJ11/sosphone-backend/internal/prefs"
)

var (
	cfg      config.Config
	deviceID string

	store      prefs.Store
	closeStore func() error
)

func Execute() error {
	return NewRoot().Execute()
}

// NewRoot builds the command tree. Defaults come from the SOS_* environment.
func NewRoot() *cobra.Command {
	defaults, err := config.Load()
	if err != nil {
		defaults = config.Config{Region: "ES", Store: prefs.DriverMemory}
	}
	cfg = defaults

	root := &cobra.Command{
		Use:          "sosctl",
		Short:        "Inspect and manage SOS phone devices",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			s, closer, err := prefs.Open(cmd.Context(), cfg.StoreOptions())
			if err != nil {
				return err
			}
			store, closeStore = s, closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeStore == nil {
				return nil
			}
			err := closeStore()
			closeStore = nil
			return err
		},
	}

	root.PersistentFlags().StringVar(&cfg.Store, "store", cfg.Store, "prefs backend: memory, sqlite or postgres")
	root.PersistentFlags().StringVar(&cfg.SQLitePath, "sqlite", cfg.SQLitePath, "sqlite database path")
	root.PersistentFlags().StringVar(&cfg.PostgresDSN, "postgres", cfg.PostgresDSN, "postgres DSN")
	root.PersistentFlags().StringVar(&cfg.Region, "region", cfg.Region, "default phone region (ISO 3166)")
	root.PersistentFlags().StringVar(&cfg.Locale, "locale", cfg.Locale, "message locale")
	root.PersistentFlags().StringVarP(&deviceID, "device", "d", "", "device id")

	root.AddCommand(validateCmd(), numberCmd(), rollCmd())
	return root
}

func deviceStore() prefs.Store {
	return prefs.Scoped(store, prefs.DeviceNamespace(deviceID))
}
