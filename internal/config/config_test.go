package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/release-server/internal/logger"
)

// TestValidate checks defaults and format validations for Config.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Zero value gets defaults.
	cfg := new(Config)
	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultHTTPAddress, cfg.HTTPAddress)
	require.Equal(t, DefaultGRPCAddress, cfg.GRPCAddress)
	require.Equal(t, DriverSQLite, cfg.Database.Driver)
	require.Equal(t, DefaultSQLiteFilename, cfg.Database.DSN)
	require.Equal(t, DefaultTimeout, cfg.Timeout.Std())
	require.Equal(t, DefaultCacheTTL, cfg.Cache.TTL.Std())
	require.True(t, cfg.Policy.BackfillAllowed())

	// Bad listen address.
	cfg = &Config{HTTPAddress: "bad-address"}
	require.Error(t, Validate(cfg))

	// Unknown driver.
	cfg = &Config{Database: Database{Driver: "oracle"}}
	require.ErrorIs(t, Validate(cfg), errUnknownDriver)

	// MySQL needs a DSN.
	cfg = &Config{Database: Database{Driver: "MySQL"}}
	require.ErrorIs(t, Validate(cfg), errDSNRequired)

	// Broken glob.
	cfg = &Config{Policy: Policy{AllowedChannels: []string{"beta-["}}}
	require.Error(t, Validate(cfg))

	// CORS origins need a scheme.
	cfg = &Config{CORSOrigins: []string{"https://app.example.org", "app.example.org"}}
	require.ErrorIs(t, Validate(cfg), errInvalidOrigin)

	cfg = &Config{CORSOrigins: []string{"*", "http://localhost:3000"}}
	require.NoError(t, Validate(cfg))

	// Unknown log encoding.
	cfg = &Config{LogFormat: "xml"}
	require.ErrorIs(t, Validate(cfg), logger.ErrUnknownFormat)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly in both formats.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	allowBackfill := false

	for _, name := range []string{"settings.yaml", "settings.toml"} {
		path := filepath.Join(t.TempDir(), name)

		cfg := &Config{
			HTTPAddress: "127.0.0.1:8081",
			GRPCAddress: "127.0.0.1:9091",
			Database:    Database{Driver: DriverSQLite, DSN: "releases.db"},
			Policy: Policy{
				RequireSignature: true,
				AllowBackfill:    &allowBackfill,
				AllowedPlatforms: []string{"linux", "darwin", "windows"},
				AllowedChannels:  []string{"stable", "beta*"},
			},
			Cache:      Cache{Enabled: true, TTL: Duration(time.Minute)},
			AdminToken: "secret",
			Timeout:    Duration(3 * time.Second),
			LogLevel:   "debug",
		}

		require.NoError(t, Save(path, cfg), name)

		loaded, err := Load(path)
		require.NoError(t, err, name)
		require.Equal(t, cfg, loaded, name)
		require.False(t, loaded.Policy.BackfillAllowed())

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(DefaultFilePermissions), info.Mode().Perm())
	}
}

// TestLoad_HumanDurations verifies string and integer durations are accepted.
func TestLoad_HumanDurations(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "a.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("timeout: 2s\ncache:\n  enabled: true\n  ttl: 90\n"), 0o600))

	cfg, err := Load(yamlPath)
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, cfg.Timeout.Std())
	require.Equal(t, 90*time.Second, cfg.Cache.TTL.Std())

	tomlPath := filepath.Join(dir, "b.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("timeout = \"750ms\"\n[database]\ndriver = \"sqlite\"\ndsn = \"x.db\"\n"), 0o600))

	cfg, err = Load(tomlPath)
	require.NoError(t, err)
	require.Equal(t, 750*time.Millisecond, cfg.Timeout.Std())
	require.Equal(t, "x.db", cfg.Database.DSN)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

// TestDefault returns a validated configuration.
func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.Equal(t, DefaultHTTPAddress, cfg.HTTPAddress)
	require.NoError(t, Validate(cfg))
}
