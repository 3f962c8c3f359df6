package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/JakeFAU/romantic-listings/internal/config"
)

func TestBuildRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Server.Port = 0

	_, err := Build(cfg, zap.NewNop())
	require.ErrorContains(t, err, "invalid config")
}

func TestBuildStartsWithEmptyStore(t *testing.T) {
	t.Parallel()

	app, err := Build(config.Default(), nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/listings", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestBuildIsolatesStores(t *testing.T) {
	t.Parallel()

	first, err := Build(config.Default(), zap.NewNop())
	require.NoError(t, err)
	second, err := Build(config.Default(), zap.NewNop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/listings", strings.NewReader(`{"title":"Sunset Picnic"}`))
	first.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	second.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/listings/0", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

// TestServeShutsDownCleanly is not parallel: goleak inspects every goroutine
// in the process.
func TestServeShutsDownCleanly(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := config.Default()
	cfg.Server.ShutdownTimeoutSeconds = 2
	app, err := Build(cfg, zap.NewNop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, ln) }()

	transport := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: transport, Timeout: 5 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://%s/", ln.Addr()))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Romantic Listings Backend Simulation is running!", string(body))
	transport.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestServeReturnsListenerErrors(t *testing.T) {
	t.Parallel()

	app, err := Build(config.Default(), zap.NewNop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	err = app.Serve(context.Background(), ln)
	require.ErrorContains(t, err, "serve")
}
