//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"

	"github.com/oshokin/release-server/internal/config"
	pb "github.com/oshokin/release-server/internal/pb/release/v1"
)

// Client wraps the ReleaseService gRPC client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the release server.
	conn *grpc.ClientConn
	// api is the ReleaseService client.
	api pb.ReleaseServiceClient
	// health is the standard health client of the same connection.
	health healthpb.HealthClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
	// token is sent as a bearer token on every call when set.
	token string
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithToken sets the admin token sent with every call.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errActorRequired is returned when an actor is not provided but is required for the operation.
	errActorRequired = errors.New("actor must be provided")
	// errReleaseRequired is returned when PublishRelease is called without a release.
	errReleaseRequired = errors.New("release must be provided")
	// errEmptyUsername is returned when no username can be determined.
	errEmptyUsername = errors.New("username is empty")
	// errNotServing is returned by Ping when the server reports a non-serving status.
	errNotServing = errors.New("server is not serving")
)

// retryServiceConfig retries read calls that failed with UNAVAILABLE.
// Admin calls are not idempotent from the caller's view and are never retried.
const retryServiceConfig = `{
  "methodConfig": [{
    "name": [
      {"service": "release.v1.ReleaseService", "method": "CheckUpdate"},
      {"service": "release.v1.ReleaseService", "method": "GetLatest"},
      {"service": "release.v1.ReleaseService", "method": "ListReleases"}
    ],
    "retryPolicy": {
      "maxAttempts": 4,
      "initialBackoff": "0.2s",
      "maxBackoff": "2s",
      "backoffMultiplier": 2,
      "retryableStatusCodes": ["UNAVAILABLE"]
    }
  }]
}`

// Dial establishes a gRPC connection to the release server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultServiceConfig(retryServiceConfig))
	if err != nil {
		return nil, fmt.Errorf("dial release server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewReleaseServiceClient(conn),
		health:      healthpb.NewHealthClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// Ping asks the standard health service whether the release service is serving.
func (c *Client) Ping(ctx context.Context) error {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.health.Check(callCtx, &healthpb.HealthCheckRequest{Service: pb.ReleaseService_ServiceDesc.ServiceName})
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}

	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: %s", errNotServing, resp.GetStatus())
	}

	return nil
}

// CheckUpdate asks whether a client on currentVersion should update.
func (c *Client) CheckUpdate(ctx context.Context, req *pb.CheckUpdateRequest) (*pb.CheckUpdateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.CheckUpdate(callCtx, req)
	if err != nil {
		return nil, fmt.Errorf("check update: %w", err)
	}

	return resp, nil
}

// GetLatest retrieves the greatest release of a group.
func (c *Client) GetLatest(ctx context.Context, req *pb.GetLatestRequest) (*pb.GetLatestResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetLatest(callCtx, req)
	if err != nil {
		return nil, fmt.Errorf("get latest: %w", err)
	}

	return resp, nil
}

// ListReleases lists published releases.
func (c *Client) ListReleases(ctx context.Context, req *pb.ListReleasesRequest) (*pb.ListReleasesResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ListReleases(callCtx, req)
	if err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}

	return resp, nil
}

// PublishRelease publishes release on behalf of actor.
func (c *Client) PublishRelease(
	ctx context.Context,
	actor *pb.SystemActor,
	release *pb.Release,
) (*pb.Release, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	if release == nil {
		return nil, errReleaseRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.PublishRelease(callCtx, &pb.PublishReleaseRequest{
		Release: release,
		Actor:   actor,
	})
	if err != nil {
		return nil, fmt.Errorf("publish release: %w", err)
	}

	return resp.Release, nil
}

// RetractRelease withdraws a release on behalf of actor.
func (c *Client) RetractRelease(ctx context.Context, actor *pb.SystemActor, req *pb.RetractReleaseRequest) error {
	if actor == nil {
		return errActorRequired
	}

	if req == nil {
		return errReleaseRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := *req
	request.Actor = actor

	if _, err := c.api.RetractRelease(callCtx, &request); err != nil {
		return fmt.Errorf("retract release: %w", err)
	}

	return nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline. It also attaches
// the request id and the admin token.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	pairs := []string{pb.RequestIDMetadataKey, uuid.NewString()}
	if c.token != "" {
		pairs = append(pairs, pb.AuthorizationMetadataKey, "Bearer "+c.token)
	}

	ctx = metadata.AppendToOutgoingContext(ctx, pairs...)

	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
