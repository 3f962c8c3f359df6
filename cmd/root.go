// Package cmd defines and implements the CLI commands for the listings backend.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JakeFAU/romantic-listings/internal/config"
	"github.com/JakeFAU/romantic-listings/internal/logging"
	"github.com/JakeFAU/romantic-listings/internal/server"
)

// runner is what the serve command drives. It is an interface so tests can
// substitute a fake application.
type runner interface {
	Run(ctx context.Context) error
}

// buildApp is the application factory. It's a variable so tests can replace
// it.
var buildApp = func(cfg config.Config, logger *zap.Logger) (runner, error) {
	return server.Build(cfg, logger)
}

// newRootCmd creates and configures the root command. Invoked without a
// subcommand it behaves like "serve".
func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "romantic-listings",
		Short: "Simulated backend for the romantic listings front-end.",
		Long: `romantic-listings serves a small JSON API over an in-memory list of
listings. Nothing is persisted: every listing is lost when the process exits.
Messaging and profile endpoints are simulated placeholders.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, cfgFile)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML); env LISTINGS_* overrides apply")
	cmd.AddCommand(newServeCmd(&cfgFile))

	return cmd
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "command failed: %v\n", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, cfgFile string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	defer func() {
		_ = logger.Sync() //nolint:errcheck // best-effort flush
	}()
	restore := zap.ReplaceGlobals(logger)
	defer restore()

	app, err := buildApp(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application services: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("run server: %w", err)
	}
	return nil
}
