package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/release-server/internal/config"
)

// TestLoadSettings_OverridesAndDefaults asserts command line overrides win over the settings file.
func TestLoadSettings_OverridesAndDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "settings.toml")

	require.NoError(t, os.WriteFile(cfgPath, []byte(`
http_addr = "127.0.0.1:8081"
log_level = "debug"

[database]
driver = "sqlite"
dsn = "from-file.db"
`), 0o600))

	settings, err := loadSettings(context.Background(), &Options{
		ConfigPath:  cfgPath,
		GRPCAddress: "127.0.0.1:9999",
		DatabaseDSN: filepath.Join(dir, "override.db"),
	})
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:8081", settings.HTTPAddress)
	require.Equal(t, "127.0.0.1:9999", settings.GRPCAddress)
	require.Equal(t, filepath.Join(dir, "override.db"), settings.Database.DSN)
	require.Equal(t, "debug", settings.LogLevel)
	require.Equal(t, config.Duration(config.DefaultTimeout), settings.Timeout)
}

// TestLoadSettings_MissingExplicitFile fails when a named settings file does not exist.
func TestLoadSettings_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := loadSettings(context.Background(), &Options{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	require.Error(t, err)
}

// TestLoadSettings_InvalidOverride rejects malformed listen addresses.
func TestLoadSettings_InvalidOverride(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(cfgPath, config.Default()))

	_, err := loadSettings(context.Background(), &Options{ConfigPath: cfgPath, HTTPAddress: "no-port"})
	require.Error(t, err)
}

// TestNewApp_WiresRoutes builds the application and serves a request through its HTTP handler.
func TestNewApp_WiresRoutes(t *testing.T) {
	t.Parallel()

	settings := config.Default()
	settings.Database.DSN = filepath.Join(t.TempDir(), "releases.db")
	settings.Cache.Enabled = true
	settings.AdminToken = "token"

	a, err := newApp(context.Background(), settings)
	require.NoError(t, err)

	defer a.close(context.Background())

	rec := httptest.NewRecorder()
	a.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/releases", strings.NewReader(`{}`))
	a.httpServer.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestRun_StopsOnCancel starts the real servers and verifies a clean shutdown.
func TestRun_StopsOnCancel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	httpAddr := reserveAddress(t)
	cfgPath := filepath.Join(dir, "settings.yaml")

	settings := config.Default()
	settings.HTTPAddress = httpAddr
	settings.GRPCAddress = reserveAddress(t)
	settings.Database.DSN = filepath.Join(dir, "releases.db")
	require.NoError(t, config.Save(cfgPath, settings))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- Run(ctx, &Options{ConfigPath: cfgPath})
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + httpAddr + "/") //nolint:noctx // Polling a local test server.
		if err != nil {
			return false
		}

		_ = resp.Body.Close()

		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}
}

func reserveAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	return addr
}
