// Package server provides the core application server and dependency wiring.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/JakeFAU/romantic-listings/internal/api"
	"github.com/JakeFAU/romantic-listings/internal/config"
	"github.com/JakeFAU/romantic-listings/internal/listing"
	"github.com/JakeFAU/romantic-listings/internal/storage/memory"
)

// App contains the application's dependencies.
type App struct {
	cfg       config.Config
	logger    *zap.Logger
	store     *memory.ListingStore
	apiServer *api.Server
}

// Build creates the application's dependencies. The listing store starts
// empty and lives as long as the App.
func Build(cfg config.Config, logger *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("building application dependencies",
		zap.Int("port", cfg.Server.Port),
		zap.Bool("metrics", cfg.Metrics.Enabled),
		zap.Strings("cors_origins", cfg.CORS.AllowedOrigins),
	)

	store := memory.NewListingStore()
	service := listing.NewService(store, logger.Named("listing"))
	return &App{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		apiServer: api.NewServer(service, cfg, logger.Named("api")),
	}, nil
}

// Handler exposes the routed API, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.apiServer.Handler()
}

// Run listens on the configured port and blocks until ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.cfg.Addr(), err)
	}
	return a.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then drains
// in-flight requests within the configured shutdown timeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.apiServer.Handler(),
		ReadHeaderTimeout: a.cfg.ReadHeaderTimeout(),
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("http server started", zap.String("addr", ln.Addr().String()))
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serveErr <- err
	}()

	var runErr error
	served := false
	select {
	case <-ctx.Done():
		a.logger.Info("shutdown initiated")
	case err := <-serveErr:
		served = true
		if err != nil {
			a.logger.Error("http server error", zap.Error(err))
			runErr = fmt.Errorf("serve: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown error", zap.Error(err))
		if runErr == nil {
			runErr = fmt.Errorf("shutdown: %w", err)
		}
	}
	if !served {
		<-serveErr
	}

	a.Close()
	return runErr
}

// Close flushes the logger. Listings are dropped with the process.
func (a *App) Close() {
	n, _ := a.store.Len(context.Background())
	a.logger.Info("shutdown complete", zap.Int("listings_discarded", n))
	if err := a.logger.Sync(); err != nil {
		a.logger.Debug("logger sync failed", zap.Error(err))
	}
}
