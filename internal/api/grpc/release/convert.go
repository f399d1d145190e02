package release

import (
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/oshokin/release-server/internal/domain/release"
	pb "github.com/oshokin/release-server/internal/pb/release/v1"
)

// toProtoManifest converts a domain manifest; nil stays nil.
func toProtoManifest(m *domain.Manifest) *pb.Manifest {
	if m == nil {
		return nil
	}

	return &pb.Manifest{
		Version:     m.Version,
		ArtifactUrl: m.ArtifactURL,
		Checksum:    m.Checksum,
		Signature:   m.Signature,
		Notes:       m.Notes,
		PublishedAt: toTimestamp(m.PublishedAt),
	}
}

// toProtoRelease converts a stored record to its wire form.
func toProtoRelease(r *domain.Record) *pb.Release {
	if r == nil {
		return nil
	}

	return &pb.Release{
		Platform:    r.Platform,
		Arch:        r.Arch,
		Channel:     r.Channel,
		Version:     r.Version,
		Checksum:    r.Checksum,
		ArtifactUrl: r.ArtifactURL,
		Signature:   r.Signature,
		Notes:       r.Notes,
		PublishedAt: toTimestamp(r.PublishedAt),
	}
}

// toDomainRecord converts a wire release; a missing timestamp stays zero.
func toDomainRecord(r *pb.Release) *domain.Record {
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

	if ts := r.GetPublishedAt(); ts != nil && ts.IsValid() {
		record.PublishedAt = ts.AsTime()
	}

	return record
}

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}

	return timestamppb.New(t)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
