// Package commands defines the CLI command structure.
//
// The bootstrap is a single sequential operation, so the root command
// runs it directly and there are no subcommands or flags. Execution is
// delegated to the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/visvarb/tplink-deco-poller/cmd/deco-bootstrap/handlers"
)

// Root returns the root command for the deco-bootstrap CLI.
func Root() *cobra.Command {
	return &cobra.Command{
		Use:   "deco-bootstrap",
		Short: "Provision a host for the TP-Link Deco hosts poller",
		Long: `deco-bootstrap sets up everything the TP-Link Deco hosts poller needs
on a Debian-style host: system packages, the poller files from GitHub,
a Python virtual environment, the credentials template and the hourly
cron job. Run it as root; re-running is safe and heals a drifted
installation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Bootstrap(cmd.Context())
		},
	}
}
