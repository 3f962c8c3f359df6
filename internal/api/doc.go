// Package api hosts the HTTP server, middleware, and REST handlers for the
// listings front-end. Notable routes:
//   - GET / confirms the backend is running.
//   - GET, POST /api/listings and GET /api/listings/{id} for the listing store.
//   - POST /api/message and GET /api/profile/{user_id}[/listings] as simulated stubs.
//   - GET /healthz / readyz for probes and GET /metrics for Prometheus scraping.
package api
