package integration

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/release-server/internal/config"
	"github.com/oshokin/release-server/internal/service/server"
)

const adminToken = "integration-token"

// testServer describes a running release server.
type testServer struct {
	httpAddr string
	grpcAddr string
}

// startServer runs a release server on free ports with a temporary database.
// The server is stopped when the test finishes.
func startServer(t *testing.T, mutate func(cfg *config.Config)) *testServer {
	t.Helper()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "release-server.yaml")

	settings := config.Default()
	settings.HTTPAddress = reservePort(t)
	settings.GRPCAddress = reservePort(t)
	settings.Database.DSN = filepath.Join(dir, "releases.db")
	settings.AdminToken = adminToken

	if mutate != nil {
		mutate(settings)
	}

	require.NoError(t, config.Save(cfgPath, settings))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- server.Run(ctx, &server.Options{ConfigPath: cfgPath})
	}()

	t.Cleanup(func() {
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(15 * time.Second):
			t.Error("release server did not stop")
		}
	})

	srv := &testServer{
		httpAddr: settings.HTTPAddress,
		grpcAddr: settings.GRPCAddress,
	}

	require.Eventually(t, func() bool {
		resp, err := http.Get(srv.url("/healthz")) //nolint:noctx // Polling a local test server.
		if err != nil {
			return false
		}

		_ = resp.Body.Close()

		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 50*time.Millisecond)

	return srv
}

func (s *testServer) url(path string) string {
	return "http://" + s.httpAddr + path
}

// reservePort returns address on a free TCP port and closes it.
func reservePort(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	return addr
}
