package cmd

import "github.com/spf13/cobra"

// newServeCmd creates the 'serve' subcommand, which starts the HTTP API and
// blocks until SIGINT or SIGTERM.
func newServeCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Starts the listings HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, *cfgFile)
		},
	}
}
