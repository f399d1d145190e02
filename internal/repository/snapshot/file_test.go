package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"

	domain "github.com/oshokin/release-server/internal/domain/release"
	pb "github.com/oshokin/release-server/internal/pb/release/v1"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.json"))

	s, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, s)
}

// TestFileRepository_SaveLoad ensures Save followed by Load returns equal releases.
func TestFileRepository_SaveLoad(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "releases.json")
	repo := NewFileRepository(file)

	ts := time.Now().UTC().Truncate(time.Second)
	want := &Snapshot{
		ExportedAt: ts,
		Releases: []*domain.Record{
			{
				Platform:    "linux",
				Arch:        "x64",
				Channel:     "stable",
				Version:     "1.3.0+build.7",
				Checksum:    "abc",
				ArtifactURL: "u",
				Signature:   "c2ln",
				Notes:       "notes",
				PublishedAt: ts.Add(-time.Hour),
			},
		},
	}

	require.NoError(t, repo.Save(context.Background(), want))

	info, err := os.Stat(file)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Overwrites leave no temporary files behind.
	require.NoError(t, repo.Save(context.Background(), &Snapshot{}))

	entries, err := os.ReadDir(filepath.Dir(file))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

// TestFileRepository_Corrupted reports undecodable and future snapshots.
func TestFileRepository_Corrupted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0o600))

	_, err := NewFileRepository(broken).Load(context.Background())
	require.Error(t, err)

	future := filepath.Join(dir, "future.json")
	require.NoError(t, os.WriteFile(future, []byte(`{"format_version": 99, "releases": []}`), 0o600))

	_, err = NewFileRepository(future).Load(context.Background())
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	unknown := filepath.Join(dir, "unknown.json")
	require.NoError(t, os.WriteFile(unknown, []byte(`{"formatVersion": 1, "hosts": []}`), 0o600))

	_, err = NewFileRepository(unknown).Load(context.Background())
	require.Error(t, err)
}

// TestFileRepository_ProtoJSONLayout checks the file is protobuf JSON of release.v1.ReleaseSnapshot.
func TestFileRepository_ProtoJSONLayout(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "releases.json")
	published := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	require.NoError(t, NewFileRepository(file).Save(context.Background(), &Snapshot{
		Releases: []*domain.Record{{
			Platform: "linux", Arch: "x64", Channel: "stable", Version: "1.3.0",
			Checksum: "abc", ArtifactURL: "u", PublishedAt: published,
		}},
	}))

	contents, err := os.ReadFile(file)
	require.NoError(t, err)

	var stored pb.ReleaseSnapshot
	require.NoError(t, protojson.Unmarshal(contents, &stored))
	require.Equal(t, uint32(FormatVersion), stored.GetFormatVersion())
	require.Len(t, stored.GetReleases(), 1)
	require.Equal(t, "u", stored.GetReleases()[0].GetArtifactUrl())
	require.Equal(t, published, stored.GetReleases()[0].GetPublishedAt().AsTime())

	// Unpopulated fields are written out so the layout is self-describing.
	require.Contains(t, string(contents), `"artifactUrl"`)
	require.Contains(t, string(contents), `"signature"`)
	require.Contains(t, string(contents), `"2024-03-01T09:30:00Z"`)
}
