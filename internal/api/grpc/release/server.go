package release

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/release-server/internal/domain/release"
	"github.com/oshokin/release-server/internal/logger"
	pb "github.com/oshokin/release-server/internal/pb/release/v1"
	repo "github.com/oshokin/release-server/internal/repository/release"
	"github.com/oshokin/release-server/internal/service/update"
)

// UpdateService abstracts the read operations the transport depends on.
type UpdateService interface {
	Check(ctx context.Context, query *domain.Query) (*update.Answer, error)
	Latest(ctx context.Context, group domain.Group) (*update.Answer, error)
	List(ctx context.Context, filter repo.Filter) ([]*domain.Record, error)
}

// IngestService abstracts the write operations the transport depends on.
type IngestService interface {
	Ingest(ctx context.Context, record *domain.Record) (*domain.Record, error)
	Retract(ctx context.Context, key domain.Key) error
}

// Server implements the ReleaseService gRPC API.
type Server struct {
	pb.UnimplementedReleaseServiceServer

	// updates answers read calls.
	updates UpdateService
	// ingest handles admin calls.
	ingest IngestService
}

// NewServer wires the provided services into a gRPC handler.
func NewServer(updates UpdateService, ingest IngestService) *Server {
	return &Server{
		updates: updates,
		ingest:  ingest,
	}
}

// CheckUpdate resolves the release a client should move to.
func (s *Server) CheckUpdate(ctx context.Context, req *pb.CheckUpdateRequest) (*pb.CheckUpdateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	query, err := domain.NewQuery(req.Platform, req.Arch, req.Channel, req.CurrentVersion)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	answer, err := s.updates.Check(ctx, query)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &pb.CheckUpdateResponse{
		UpdateAvailable: answer.Manifest != nil,
		Manifest:        toProtoManifest(answer.Manifest),
	}, nil
}

// GetLatest returns the greatest release of a group.
func (s *Server) GetLatest(ctx context.Context, req *pb.GetLatestRequest) (*pb.GetLatestResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	group, err := domain.NewGroup(req.Platform, req.Arch, req.Channel)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	answer, err := s.updates.Latest(ctx, group)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &pb.GetLatestResponse{
		Found:    answer.Manifest != nil,
		Manifest: toProtoManifest(answer.Manifest),
	}, nil
}

// ListReleases lists published releases.
func (s *Server) ListReleases(ctx context.Context, req *pb.ListReleasesRequest) (*pb.ListReleasesResponse, error) {
	filter := repo.Filter{}
	if req != nil {
		filter = repo.Filter{
			Platform: normalize(req.Platform),
			Arch:     normalize(req.Arch),
			Channel:  normalize(req.Channel),
		}
	}

	records, err := s.updates.List(ctx, filter)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	releases := make([]*pb.Release, 0, len(records))
	for _, r := range records {
		releases = append(releases, toProtoRelease(r))
	}

	return &pb.ListReleasesResponse{Releases: releases}, nil
}

// PublishRelease ingests a new release.
func (s *Server) PublishRelease(ctx context.Context, req *pb.PublishReleaseRequest) (*pb.PublishReleaseResponse, error) {
	if req.GetRelease() == nil {
		return nil, status.Error(codes.InvalidArgument, "release is required")
	}

	ctx = withActor(ctx, req.GetActor())

	stored, err := s.ingest.Ingest(ctx, toDomainRecord(req.GetRelease()))
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &pb.PublishReleaseResponse{Release: toProtoRelease(stored)}, nil
}

// RetractRelease withdraws a release. Retracting an unknown release succeeds.
func (s *Server) RetractRelease(ctx context.Context, req *pb.RetractReleaseRequest) (*pb.RetractReleaseResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	ctx = withActor(ctx, req.GetActor())

	key := domain.Key{
		Group: domain.Group{
			Platform: req.Platform,
			Arch:     req.Arch,
			Channel:  req.Channel,
		},
		Version: req.Version,
	}

	if err := s.ingest.Retract(ctx, key); err != nil {
		return nil, toStatus(ctx, err)
	}

	return &pb.RetractReleaseResponse{}, nil
}

// withActor attaches the calling actor to the request logger for the audit trail.
func withActor(ctx context.Context, actor *pb.SystemActor) context.Context {
	if actor == nil {
		return ctx
	}

	return logger.WithKV(ctx, "actor_host", actor.GetHostname(), "actor_user", actor.GetUsername())
}
