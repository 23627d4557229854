package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uefisettings/uefisettings/internal/daemon"
	"github.com/uefisettings/uefisettings/internal/extension"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(
		lifecycleCmd(extension.EventInstall, "Create the uefisettings table"),
		lifecycleCmd(extension.EventUpgrade, "Upgrade the uefisettings schema (currently nothing to do)"),
		lifecycleCmd(extension.EventDelete, "Drop the uefisettings table and all its rows"),
		statusCmd,
	)
}

// lifecycleCmd returns the command dispatching event to the plugin.
func lifecycleCmd(event extension.Event, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   event.String(),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg, nil)
			if err != nil {
				return err
			}

			defer func() { _ = d.Close() }()

			return d.Run(cmd.Context(), event)
		},
	}

	if event == extension.EventDelete {
		cmd.Aliases = []string{"remove", "uninstall"}
	}

	return cmd
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the uefisettings table is installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		d, err := daemon.New(&cfg, nil)
		if err != nil {
			return err
		}

		defer func() { _ = d.Close() }()

		status, err := d.Status(cmd.Context())
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return err
	},
}
