// Package main hosts the listings backend entrypoint.
//
// Architecture overview:
//   - HTTP API: internal/api.Server routes the listing, messaging and profile endpoints through chi, behind
//     request-ID, access-log, panic-recovery, Prometheus and CORS middleware.
//   - Listing store: internal/storage/memory.ListingStore holds listings in creation order for the life of the
//     process. It is owned by server.App and injected into the API; nothing is persisted.
//   - Configuration & plumbing: Viper populates config from env/files; zap provides structured logging; Prometheus
//     metrics are exported on /metrics; cobra drives the CLI.
//
// Quick checklist:
//   - Configure env vars: LISTINGS_SERVER_PORT or PORT, LISTINGS_LOGGING_DEVELOPMENT, LISTINGS_CORS_ALLOWED_ORIGINS,
//     LISTINGS_METRICS_ENABLED.
//   - Run locally: go run . serve --config config.yaml (or rely solely on env overrides).
package main
