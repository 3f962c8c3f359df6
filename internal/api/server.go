package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/JakeFAU/romantic-listings/internal/config"
	"github.com/JakeFAU/romantic-listings/internal/id/uuid"
	"github.com/JakeFAU/romantic-listings/internal/listing"
	"github.com/JakeFAU/romantic-listings/internal/metrics"
)

const indexText = "Romantic Listings Backend Simulation is running!"

// IDGenerator mints request IDs.
type IDGenerator interface {
	NewID() (string, error)
}

// Server wires HTTP handlers to the listing service.
type Server struct {
	router  chi.Router
	service *listing.Service
	idGen   IDGenerator
	cfg     config.Config
	logger  *zap.Logger
}

// NewServer constructs a Server with middleware and routes.
func NewServer(service *listing.Service, cfg config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		service: service,
		idGen:   uuid.New(),
		cfg:     cfg,
		logger:  logger,
	}
	if cfg.Metrics.Enabled {
		metrics.Init()
	}

	r := chi.NewRouter()
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoverMiddleware)
	if cfg.Metrics.Enabled {
		r.Use(metrics.Middleware)
	}
	r.Use(corsMiddleware(cfg.CORS))
	r.Use(timeoutMiddleware(cfg.RequestTimeout()))

	r.NotFound(s.notFound)
	r.MethodNotAllowed(s.methodNotAllowed)

	r.Get("/", s.index)
	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)
	if cfg.Metrics.Enabled {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/listings", s.listListings)
		r.Post("/listings", s.createListing)
		r.Get("/listings/{id:-?[0-9]+}", s.getListing)

		r.Post("/message", s.sendMessage)

		r.Get("/profile/{user_id:[0-9]+}", s.getUserProfile)
		r.Get("/profile/{user_id:[0-9]+}/listings", s.getUserListings)
	})

	s.router = r
	return s
}

// Handler returns the Router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(indexText)); err != nil {
		s.logger.Warn("index write failed", zap.Error(err))
	}
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) readyz(w http.ResponseWriter, _ *http.Request) {
	// The store is in memory; there is nothing downstream to wait for.
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) notFound(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusNotFound, "Not found")
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
}
