package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/uefisettings/uefisettings/internal/daemon"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the status web service",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		d, err := daemon.New(&cfg, prometheus.DefaultRegisterer)
		if err != nil {
			return err
		}

		defer func() { _ = d.Close() }()

		return d.Serve(prometheus.DefaultGatherer)
	},
}
