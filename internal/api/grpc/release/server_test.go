package release

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"

	domain "github.com/oshokin/release-server/internal/domain/release"
	pb "github.com/oshokin/release-server/internal/pb/release/v1"
	repo "github.com/oshokin/release-server/internal/repository/release"
	"github.com/oshokin/release-server/internal/service/update"
)

// fakeUpdates implements UpdateService for unit testing the transport.
type fakeUpdates struct {
	// answer is returned by Check and Latest.
	answer *update.Answer
	// err overrides every result.
	err error
	// records is returned by List.
	records []*domain.Record
	// lastQuery keeps the query of the last Check call.
	lastQuery *domain.Query
}

func (f *fakeUpdates) Check(_ context.Context, query *domain.Query) (*update.Answer, error) {
	f.lastQuery = query

	return f.answer, f.err
}

func (f *fakeUpdates) Latest(context.Context, domain.Group) (*update.Answer, error) {
	return f.answer, f.err
}

func (f *fakeUpdates) List(context.Context, repo.Filter) ([]*domain.Record, error) {
	return f.records, f.err
}

// fakeIngest implements IngestService.
type fakeIngest struct {
	err       error
	ingested  *domain.Record
	retracted *domain.Key
}

func (f *fakeIngest) Ingest(_ context.Context, record *domain.Record) (*domain.Record, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.ingested = record

	return record, nil
}

func (f *fakeIngest) Retract(_ context.Context, key domain.Key) error {
	f.retracted = &key

	return f.err
}

var publishedAt = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func manifestAnswer(version string) *update.Answer {
	return &update.Answer{
		Decision: domain.UpdateAvailable(&domain.Record{Version: version}),
		Manifest: &domain.Manifest{
			Version:     version,
			ArtifactURL: "https://cdn.example.com/" + version,
			Checksum:    "abc",
			PublishedAt: publishedAt,
		},
	}
}

// TestServer_CheckUpdate covers update, no update and invalid input.
func TestServer_CheckUpdate(t *testing.T) {
	t.Parallel()

	updates := &fakeUpdates{answer: manifestAnswer("1.3.0")}
	s := NewServer(updates, new(fakeIngest))
	ctx := context.Background()

	resp, err := s.CheckUpdate(ctx, &pb.CheckUpdateRequest{Platform: "Linux", Arch: "x64", Channel: "stable", CurrentVersion: "1.2.0"})
	require.NoError(t, err)
	require.True(t, resp.UpdateAvailable)
	require.Equal(t, "1.3.0", resp.GetManifest().Version)
	require.Equal(t, publishedAt, resp.GetManifest().PublishedAt.AsTime())
	require.Equal(t, "linux", updates.lastQuery.Platform)

	updates.answer = &update.Answer{Decision: domain.NoUpdate()}

	resp, err = s.CheckUpdate(ctx, &pb.CheckUpdateRequest{Platform: "linux", Arch: "x64", Channel: "stable", CurrentVersion: "2.0.0"})
	require.NoError(t, err)
	require.False(t, resp.UpdateAvailable)
	require.Nil(t, resp.GetManifest())

	_, err = s.CheckUpdate(ctx, &pb.CheckUpdateRequest{Platform: "linux", Arch: "x64", Channel: "stable", CurrentVersion: "not-a-version"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	require.Equal(t, []string{domain.FieldCurrentVersion}, FieldViolations(err))

	_, err = s.CheckUpdate(ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_StatusMapping verifies domain errors become the documented codes.
func TestServer_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		code codes.Code
	}{
		{fmt.Errorf("x: %w", domain.ErrDuplicateRelease), codes.AlreadyExists},
		{domain.NewFieldError(domain.FieldSignature, "", domain.ErrIntegrityPolicyViolation), codes.FailedPrecondition},
		{domain.ErrBackfillRejected, codes.FailedPrecondition},
		{domain.NewFieldError(domain.FieldChecksum, "", domain.ErrInvalidField), codes.InvalidArgument},
		{fmt.Errorf("load: %w", domain.ErrStoreUnavailable), codes.Unavailable},
		{context.Canceled, codes.Canceled},
		{fmt.Errorf("boom"), codes.Internal},
	}

	for _, tt := range tests {
		ingest := &fakeIngest{err: tt.err}
		s := NewServer(new(fakeUpdates), ingest)

		_, err := s.PublishRelease(context.Background(), &pb.PublishReleaseRequest{Release: &pb.Release{Version: "1.0.0"}})
		require.Equal(t, tt.code, status.Code(err), tt.err.Error())
	}
}

// TestServer_PublishAndRetract verifies conversion of admin calls.
func TestServer_PublishAndRetract(t *testing.T) {
	t.Parallel()

	ingest := new(fakeIngest)
	s := NewServer(new(fakeUpdates), ingest)
	ctx := context.Background()

	_, err := s.PublishRelease(ctx, &pb.PublishReleaseRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := s.PublishRelease(ctx, &pb.PublishReleaseRequest{
		Release: &pb.Release{
			Platform:    "linux",
			Arch:        "x64",
			Channel:     "stable",
			Version:     "1.0.0",
			Checksum:    "abc",
			ArtifactUrl: "u",
			PublishedAt: toTimestamp(publishedAt),
		},
		Actor: &pb.SystemActor{Hostname: "build-01", Username: "ci"},
	})
	require.NoError(t, err)
	require.Equal(t, publishedAt, ingest.ingested.PublishedAt)
	require.Equal(t, "1.0.0", resp.Release.Version)

	_, err = s.RetractRelease(ctx, &pb.RetractReleaseRequest{Platform: "linux", Arch: "x64", Channel: "stable", Version: "1.0.0"})
	require.NoError(t, err)
	require.Equal(t, "1.0.0", ingest.retracted.Version)
}

// TestServer_ListAndLatest covers the remaining read calls.
func TestServer_ListAndLatest(t *testing.T) {
	t.Parallel()

	updates := &fakeUpdates{
		answer:  manifestAnswer("2.0.0"),
		records: []*domain.Record{{Platform: "linux", Version: "2.0.0"}, {Platform: "linux", Version: "1.0.0"}},
	}
	s := NewServer(updates, new(fakeIngest))

	list, err := s.ListReleases(context.Background(), &pb.ListReleasesRequest{Platform: "LINUX"})
	require.NoError(t, err)
	require.Len(t, list.Releases, 2)
	require.Nil(t, list.Releases[0].PublishedAt)

	latest, err := s.GetLatest(context.Background(), &pb.GetLatestRequest{Platform: "linux", Arch: "x64", Channel: "stable"})
	require.NoError(t, err)
	require.True(t, latest.Found)

	_, err = s.GetLatest(context.Background(), &pb.GetLatestRequest{Platform: "", Arch: "x64", Channel: "stable"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	require.Equal(t, []string{domain.FieldPlatform}, FieldViolations(err))
}

// TestAdminAuthInterceptor checks the token guard on admin and read methods.
func TestAdminAuthInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := AdminAuthInterceptor("s3cret")
	handler := func(context.Context, any) (any, error) { return "ok", nil }

	call := func(method, authorization string) error {
		ctx := context.Background()
		if authorization != "" {
			ctx = metadata.NewIncomingContext(ctx, metadata.Pairs(pb.AuthorizationMetadataKey, authorization))
		}

		_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, handler)

		return err
	}

	require.NoError(t, call(pb.ReleaseService_CheckUpdate_FullMethodName, ""))
	require.Equal(t, codes.Unauthenticated, status.Code(call(pb.ReleaseService_PublishRelease_FullMethodName, "")))
	require.Equal(t, codes.Unauthenticated, status.Code(call(pb.ReleaseService_RetractRelease_FullMethodName, "Bearer nope")))
	require.NoError(t, call(pb.ReleaseService_PublishRelease_FullMethodName, "Bearer s3cret"))

	open := AdminAuthInterceptor("")
	_, err := open(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: pb.ReleaseService_PublishRelease_FullMethodName}, handler)
	require.NoError(t, err)
}

// TestLoggingInterceptor verifies the handler runs under the configured deadline.
func TestLoggingInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := LoggingInterceptor(time.Second)

	resp, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: pb.ReleaseService_CheckUpdate_FullMethodName},
		func(ctx context.Context, _ any) (any, error) {
			_, ok := ctx.Deadline()
			require.True(t, ok)

			return "ok", nil
		})
	require.NoError(t, err)
	require.Equal(t, "ok", resp)
}

// dialServer serves s over an in-memory listener and returns a plain generated client.
func dialServer(t *testing.T, s *Server) pb.ReleaseServiceClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(LoggingInterceptor(time.Second), AdminAuthInterceptor("")))
	pb.RegisterReleaseServiceServer(server, s)

	go func() {
		_ = server.Serve(listener)
	}()

	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return pb.NewReleaseServiceClient(conn)
}

// TestServer_DefaultProtoCodec serves calls from a client without any codec options,
// the way grpcurl or stubs in other languages call the API.
func TestServer_DefaultProtoCodec(t *testing.T) {
	t.Parallel()

	ingest := new(fakeIngest)
	client := dialServer(t, NewServer(&fakeUpdates{answer: manifestAnswer("1.3.0")}, ingest))
	ctx := context.Background()

	resp, err := client.CheckUpdate(ctx, &pb.CheckUpdateRequest{
		Platform: "linux", Arch: "x64", Channel: "stable", CurrentVersion: "1.2.0",
	})
	require.NoError(t, err)
	require.True(t, resp.GetUpdateAvailable())
	require.Equal(t, "https://cdn.example.com/1.3.0", resp.GetManifest().GetArtifactUrl())
	require.Equal(t, publishedAt, resp.GetManifest().GetPublishedAt().AsTime())

	published, err := client.PublishRelease(ctx, &pb.PublishReleaseRequest{
		Release: &pb.Release{
			Platform: "linux", Arch: "x64", Channel: "stable", Version: "1.4.0", Checksum: "abc", ArtifactUrl: "u",
		},
		Actor: &pb.SystemActor{Hostname: "build-01", Username: "ci"},
	})
	require.NoError(t, err)
	require.Equal(t, "1.4.0", published.GetRelease().GetVersion())
	require.Equal(t, "u", ingest.ingested.ArtifactURL)

	_, err = client.CheckUpdate(ctx, &pb.CheckUpdateRequest{
		Platform: "linux", Arch: "x64", Channel: "stable", CurrentVersion: "not-a-version",
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	require.Equal(t, []string{domain.FieldCurrentVersion}, FieldViolations(err))
}

// TestMessages_BinaryRoundTrip checks the wire messages are real protobuf messages.
func TestMessages_BinaryRoundTrip(t *testing.T) {
	t.Parallel()

	want := &pb.PublishReleaseRequest{
		Release: toProtoRelease(&domain.Record{
			Platform: "linux", Arch: "x64", Channel: "stable", Version: "1.3.0+build.7",
			Checksum: "sha256:abc", ArtifactURL: "u", Signature: "c2ln", PublishedAt: publishedAt,
		}),
		Actor: &pb.SystemActor{Hostname: "build-01", Username: "ci"},
	}

	data, err := proto.Marshal(want)
	require.NoError(t, err)

	got := new(pb.PublishReleaseRequest)
	require.NoError(t, proto.Unmarshal(data, got))
	require.True(t, proto.Equal(want, got))
	require.Equal(t, "release.v1.PublishReleaseRequest", string(got.ProtoReflect().Descriptor().FullName()))
}
