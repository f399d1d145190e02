package release

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/oshokin/release-server/internal/logger"
	pb "github.com/oshokin/release-server/internal/pb/release/v1"
)

// adminMethods require the admin token.
var adminMethods = map[string]struct{}{
	pb.ReleaseService_PublishRelease_FullMethodName: {},
	pb.ReleaseService_RetractRelease_FullMethodName: {},
}

// LoggingInterceptor binds a request id to the request logger, applies the
// handling timeout and logs one line per call.
func LoggingInterceptor(timeout time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		id := firstMetadata(ctx, pb.RequestIDMetadataKey)
		if id == "" {
			id = uuid.NewString()
		}

		ctx = logger.WithKV(ctx, "request_id", id, "grpc_method", info.FullMethod)

		if timeout > 0 {
			var cancel context.CancelFunc

			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		start := time.Now()
		resp, err := handler(ctx, req)

		logger.InfoKV(ctx, "gRPC request", "code", status.Code(err).String(), "latency", time.Since(start))

		return resp, err
	}
}

// AdminAuthInterceptor requires "authorization: Bearer <token>" on admin
// methods. An empty token disables the check.
func AdminAuthInterceptor(token string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := adminMethods[info.FullMethod]; !ok || token == "" {
			return handler(ctx, req)
		}

		presented, ok := strings.CutPrefix(firstMetadata(ctx, pb.AuthorizationMetadataKey), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(presented)), []byte(token)) != 1 {
			logger.WarnKV(ctx, "Unauthorized admin call", "method", info.FullMethod)

			return nil, status.Error(codes.Unauthenticated, "missing or invalid admin token")
		}

		return handler(ctx, req)
	}
}

func firstMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	values := md.Get(key)
	if len(values) == 0 {
		return ""
	}

	return values[0]
}
