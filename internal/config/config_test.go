package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadWithFileOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	configYAML := `
server:
  port: 9090
  read_header_timeout_seconds: 2
  shutdown_timeout_seconds: 4
  request_timeout_seconds: 30
logging:
  development: false
cors:
  allowed_origins: ["https://dates.example.com"]
  max_age_seconds: 60
metrics:
  enabled: false
`
	if err := os.WriteFile(path, []byte(configYAML), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Development {
		t.Fatal("expected production logging")
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "https://dates.example.com" {
		t.Fatalf("expected origin override, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled")
	}
	if got := cfg.ShutdownTimeout(); got != 4*time.Second {
		t.Fatalf("expected shutdown timeout 4s, got %v", got)
	}
	if got := cfg.ReadHeaderTimeout(); got != 2*time.Second {
		t.Fatalf("expected read header timeout 2s, got %v", got)
	}
	if got := cfg.RequestTimeout(); got != 30*time.Second {
		t.Fatalf("expected request timeout 30s, got %v", got)
	}
	if cfg.Addr() != ":9090" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Server.Port != 5000 {
		t.Fatalf("expected default port 5000, got %d", cfg.Server.Port)
	}
	if !cfg.Logging.Development || !cfg.Metrics.Enabled {
		t.Fatalf("expected development logging and metrics by default: %+v", cfg)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Fatalf("expected any-origin CORS by default, got %v", cfg.CORS.AllowedOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LISTINGS_SERVER_PORT", "7070")
	t.Setenv("LISTINGS_LOGGING_DEVELOPMENT", "false")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Fatalf("expected env port 7070, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Development {
		t.Fatal("expected env to disable development logging")
	}
}

func TestLoadHonorsBarePortEnv(t *testing.T) {
	t.Setenv("PORT", "8181")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8181 {
		t.Fatalf("expected PORT override 8181, got %d", cfg.Server.Port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Fatalf("expected read config error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "ok", mutate: func(*Config) {}},
		{name: "port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "server.port"},
		{name: "port range", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "server.port"},
		{
			name:    "read header",
			mutate:  func(c *Config) { c.Server.ReadHeaderTimeoutSeconds = 0 },
			wantErr: "read_header_timeout_seconds",
		},
		{
			name:    "shutdown",
			mutate:  func(c *Config) { c.Server.ShutdownTimeoutSeconds = -1 },
			wantErr: "shutdown_timeout_seconds",
		},
		{
			name:    "request",
			mutate:  func(c *Config) { c.Server.RequestTimeoutSeconds = 0 },
			wantErr: "request_timeout_seconds",
		},
		{name: "origins", mutate: func(c *Config) { c.CORS.AllowedOrigins = nil }, wantErr: "allowed_origins"},
		{name: "max age", mutate: func(c *Config) { c.CORS.MaxAgeSeconds = -5 }, wantErr: "max_age_seconds"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Validate() error = %v, want containing %q", err, tc.wantErr)
			}
		})
	}
}
