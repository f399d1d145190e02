package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/release-server/internal/config"
	domain "github.com/oshokin/release-server/internal/domain/release"
	repo "github.com/oshokin/release-server/internal/repository/release"
	"github.com/oshokin/release-server/internal/repository/snapshot"
)

// seedStore writes records straight into the SQLite store at dsn.
func seedStore(t *testing.T, dsn string, records ...*domain.Record) {
	t.Helper()

	store, err := repo.Open(context.Background(), &config.Database{Driver: config.DriverSQLite, DSN: dsn})
	require.NoError(t, err)

	defer func() {
		require.NoError(t, store.Close())
	}()

	for _, r := range records {
		require.NoError(t, store.Insert(context.Background(), r))
	}
}

func listStore(t *testing.T, dsn string) []*domain.Record {
	t.Helper()

	store, err := repo.Open(context.Background(), &config.Database{Driver: config.DriverSQLite, DSN: dsn})
	require.NoError(t, err)

	defer func() {
		require.NoError(t, store.Close())
	}()

	records, err := store.List(context.Background(), repo.Filter{})
	require.NoError(t, err)

	return records
}

// emptySettings returns a path to a settings file that relies on defaults.
func emptySettings(t *testing.T, dir string) string {
	t.Helper()

	cfgPath := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: info\n"), 0o600))

	return cfgPath
}

// TestExportImport_RoundTrip moves releases between two stores through a snapshot.
func TestExportImport_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := emptySettings(t, dir)
	source := filepath.Join(dir, "source.db")
	target := filepath.Join(dir, "target.db")
	file := filepath.Join(dir, "releases.json")

	published := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	seedStore(t, source,
		&domain.Record{
			Platform: "linux", Arch: "x64", Channel: "stable", Version: "1.2.0",
			Checksum: "aaa", ArtifactURL: "https://example.com/1.2.0", PublishedAt: published,
		},
		&domain.Record{
			Platform: "linux", Arch: "x64", Channel: "stable", Version: "1.3.0+build.7",
			Checksum: "bbb", ArtifactURL: "u", Signature: "c2ln", Notes: "fixes",
			PublishedAt: published.Add(time.Hour),
		})

	count, err := Export(context.Background(), &Options{ConfigPath: cfgPath, DatabaseDSN: source}, file)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	exported, err := snapshot.NewFileRepository(file).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, exported.Releases, 2)
	require.False(t, exported.ExportedAt.IsZero())

	seedStore(t, target, &domain.Record{
		Platform: "linux", Arch: "x64", Channel: "stable", Version: "1.2.0",
		Checksum: "aaa", ArtifactURL: "https://example.com/1.2.0", PublishedAt: published,
	})

	report, err := Import(context.Background(), &Options{ConfigPath: cfgPath, DatabaseDSN: target}, file)
	require.NoError(t, err)
	require.Equal(t, &ImportReport{Imported: 1, Skipped: 1}, report)

	records := listStore(t, target)
	require.Len(t, records, 2)
	require.Equal(t, "1.3.0+build.7", records[0].Version)
	require.Equal(t, "c2ln", records[0].Signature)
	require.True(t, records[0].PublishedAt.Equal(published.Add(time.Hour)))
}

// TestImport_StopsOnRejectedRelease reports the first release the policy refuses.
func TestImport_StopsOnRejectedRelease(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("policy:\n  require_signature: true\n"), 0o600))

	file := filepath.Join(dir, "releases.json")
	require.NoError(t, snapshot.NewFileRepository(file).Save(context.Background(), &snapshot.Snapshot{
		Releases: []*domain.Record{{
			Platform: "linux", Arch: "x64", Channel: "stable", Version: "2.0.0",
			Checksum: "ccc", ArtifactURL: "u",
		}},
	}))

	report, err := Import(context.Background(),
		&Options{ConfigPath: cfgPath, DatabaseDSN: filepath.Join(dir, "target.db")}, file)
	require.ErrorIs(t, err, domain.ErrIntegrityPolicyViolation)
	require.Equal(t, 0, report.Imported)
}

// TestImport_MissingSnapshot fails before touching the store.
func TestImport_MissingSnapshot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Import(context.Background(),
		&Options{ConfigPath: emptySettings(t, dir), DatabaseDSN: filepath.Join(dir, "target.db")},
		filepath.Join(dir, "absent.json"))
	require.ErrorIs(t, err, snapshot.ErrNotFound)

	_, statErr := os.Stat(filepath.Join(dir, "target.db"))
	require.ErrorIs(t, statErr, os.ErrNotExist)
}
