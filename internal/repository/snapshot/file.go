package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oshokin/release-server/internal/config"
	domain "github.com/oshokin/release-server/internal/domain/release"
	pb "github.com/oshokin/release-server/internal/pb/release/v1"
)

// FormatVersion is the snapshot layout written by this package.
const FormatVersion = 1

// Snapshot is a point-in-time copy of the release store.
type Snapshot struct {
	// ExportedAt is when the snapshot was taken.
	ExportedAt time.Time
	// Releases lists every release, most recently published first.
	Releases []*domain.Record
}

var (
	// ErrNotFound is returned when the snapshot file does not exist.
	ErrNotFound = errors.New("snapshot not found")
	// ErrUnsupportedFormat is returned for snapshots written by a newer layout.
	ErrUnsupportedFormat = errors.New("unsupported snapshot format")
)

// FileRepository reads and writes a snapshot at a fixed path.
// The file holds a release.v1.ReleaseSnapshot in protobuf JSON (protojson),
// so it stays readable by anything that speaks the gRPC API types.
type FileRepository struct {
	// path is the filesystem location of the snapshot.
	path string
	// mu serializes access to the file.
	mu sync.Mutex
}

// NewFileRepository creates a repository for the snapshot at path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the snapshot from disk.
func (r *FileRepository) Load(_ context.Context) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var stored pb.ReleaseSnapshot
	if err = protojson.Unmarshal(contents, &stored); err != nil {
		return nil, fmt.Errorf("decode snapshot file: %w", err)
	}

	if stored.GetFormatVersion() > FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, stored.GetFormatVersion())
	}

	return fromProto(&stored), nil
}

// Save writes the snapshot. The file is replaced atomically so a crash never
// leaves a truncated snapshot behind.
func (r *FileRepository) Save(_ context.Context, snapshot *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		protoSnapshot  = toProto(snapshot)
		marshalOptions = protojson.MarshalOptions{
			Multiline:       true,
			EmitUnpopulated: true,
		}
	)

	data, err := marshalOptions.Marshal(protoSnapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}

	tmpName := tmp.Name()

	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("write snapshot file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot file: %w", err)
	}

	if err = os.Chmod(tmpName, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("chmod snapshot file: %w", err)
	}

	if err = os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace snapshot file: %w", err)
	}

	return nil
}

// fromProto converts the stored message into the domain Snapshot.
func fromProto(stored *pb.ReleaseSnapshot) *Snapshot {
	snapshot := &Snapshot{
		Releases: make([]*domain.Record, 0, len(stored.Releases)),
	}

	if ts := stored.GetExportedAt(); ts != nil {
		snapshot.ExportedAt = ts.AsTime()
	}

	for _, r := range stored.GetReleases() {
		if r == nil {
			continue
		}

		record := &domain.Record{
			Platform:    r.GetPlatform(),
			Arch:        r.GetArch(),
			Channel:     r.GetChannel(),
			Version:     r.GetVersion(),
			Checksum:    r.GetChecksum(),
			ArtifactURL: r.GetArtifactUrl(),
			Signature:   r.GetSignature(),
			Notes:       r.GetNotes(),
		}

		if ts := r.GetPublishedAt(); ts != nil {
			record.PublishedAt = ts.AsTime()
		}

		snapshot.Releases = append(snapshot.Releases, record)
	}

	return snapshot
}

// toProto converts the domain Snapshot into the stored message.
func toProto(snapshot *Snapshot) *pb.ReleaseSnapshot {
	stored := &pb.ReleaseSnapshot{
		FormatVersion: FormatVersion,
		Releases:      make([]*pb.Release, 0, len(snapshot.Releases)),
	}

	if !snapshot.ExportedAt.IsZero() {
		stored.ExportedAt = timestamppb.New(snapshot.ExportedAt)
	}

	for _, r := range snapshot.Releases {
		var publishedAt *timestamppb.Timestamp
		if !r.PublishedAt.IsZero() {
			publishedAt = timestamppb.New(r.PublishedAt)
		}

		stored.Releases = append(stored.Releases, &pb.Release{
			Platform:    r.Platform,
			Arch:        r.Arch,
			Channel:     r.Channel,
			Version:     r.Version,
			Checksum:    r.Checksum,
			ArtifactUrl: r.ArtifactURL,
			Signature:   r.Signature,
			Notes:       r.Notes,
			PublishedAt: publishedAt,
		})
	}

	return stored
}
