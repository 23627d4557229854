// Package app implements the main application commands.
package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/uefisettings/uefisettings/internal/config"
	"github.com/uefisettings/uefisettings/internal/logger"
)

var (
	configPath string        // Path to the configuration directory
	devMode    bool          // Overrides Config.DevMode
	cfg        config.Config // Read in PersistentPreRunE
)

var rootCmd = &cobra.Command{
	Use:   "uefisettings",
	Short: "uefisettings manages the schema of the uefisettings extension",
	Long: `uefisettings runs the lifecycle hooks of the uefisettings extension.
install creates the uefisettings table, delete drops it and upgrade is
reserved for future schema changes.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error

		if cfg, err = config.ReadConfig(configPath); err != nil {
			return err
		}

		if devMode {
			cfg.DevMode = true
		}

		// status prints JSON on stdout, only serve logs there
		if cmd.Name() != serveCmd.Name() {
			cfg.Log.Console.Stderr = true
		}

		return errors.Wrap(logger.Init(cfg.Log), "failed to init logger")
	},
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "directory holding main.toml (default ./etc/)")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false, "Enable dev mode")
}

// ExecuteContext runs the root command; ctx cancels running hooks.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
