//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"

	pb "github.com/oshokin/release-server/internal/pb/release/v1"
)

// TestDial_ValidatesAddress verifies that Dial rejects empty addresses.
func TestDial_ValidatesAddress(t *testing.T) {
	t.Parallel()

	c, err := Dial(context.Background(), "")
	require.Error(t, err)
	require.Nil(t, c)
}

// TestDial_AcceptsRetryConfig verifies the default service config parses.
func TestDial_AcceptsRetryConfig(t *testing.T) {
	t.Parallel()

	c, err := Dial(context.Background(), "127.0.0.1:1", WithToken("t"), WithCallTimeout(time.Second))
	require.NoError(t, err)
	require.Equal(t, time.Second, c.callTimeout)
	require.NoError(t, c.Close())
}

// TestClient_callContext checks timeout vs cancel-only behavior of callContext.
func TestClient_callContext(t *testing.T) {
	t.Parallel()

	c := &Client{
		callTimeout: 0,
	}

	ctx, cancel := c.callContext(context.Background())
	cancel()

	require.NotNil(t, ctx)

	c.callTimeout = 10 * time.Millisecond

	ctx, cancel = c.callContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 30*time.Millisecond)
}

// TestClient_callContextMetadata verifies the token and request id travel as metadata.
func TestClient_callContextMetadata(t *testing.T) {
	t.Parallel()

	c := &Client{token: "s3cret"}

	ctx, cancel := c.callContext(context.Background())
	defer cancel()

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	require.Equal(t, []string{"Bearer s3cret"}, md.Get("authorization"))
	require.Len(t, md.Get("x-request-id"), 1)

	anonymous := new(Client)

	ctx, cancel = anonymous.callContext(context.Background())
	defer cancel()

	md, _ = metadata.FromOutgoingContext(ctx)
	require.Empty(t, md.Get("authorization"))
}

// TestClient_AdminCallsRequireActor asserts that a nil actor is rejected by the client.
func TestClient_AdminCallsRequireActor(t *testing.T) {
	t.Parallel()

	c := new(Client)

	_, err := c.PublishRelease(context.Background(), nil, &pb.Release{})
	require.ErrorIs(t, err, errActorRequired)

	_, err = c.PublishRelease(context.Background(), &pb.SystemActor{}, nil)
	require.ErrorIs(t, err, errReleaseRequired)

	err = c.RetractRelease(context.Background(), nil, &pb.RetractReleaseRequest{})
	require.ErrorIs(t, err, errActorRequired)
}
