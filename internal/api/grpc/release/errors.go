package release

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/release-server/internal/domain/release"
	"github.com/oshokin/release-server/internal/logger"
)

// toStatus maps a domain error to a gRPC status error.
// Invalid input carries an errdetails.BadRequest naming the offending field.
func toStatus(ctx context.Context, err error) error {
	var fieldErr *domain.FieldError

	switch {
	case errors.Is(err, domain.ErrIntegrityPolicyViolation),
		errors.Is(err, domain.ErrBackfillRejected):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrDuplicateRelease):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.As(err, &fieldErr):
		return invalidArgument(ctx, fieldErr)
	case errors.Is(err, domain.ErrInvalidVersion),
		errors.Is(err, domain.ErrInvalidField):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		logger.WarnKV(ctx, "Store unavailable", "error", err)

		return status.Error(codes.Unavailable, "release store is temporarily unavailable")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		logger.ErrorKV(ctx, "Request failed", "error", err)

		return status.Error(codes.Internal, "internal error")
	}
}

func invalidArgument(ctx context.Context, fieldErr *domain.FieldError) error {
	st := status.New(codes.InvalidArgument, fieldErr.Error())

	detailed, err := st.WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{
				Field:       fieldErr.Field,
				Description: fieldErr.Err.Error(),
			},
		},
	})
	if err != nil {
		logger.WarnKV(ctx, "Failed to attach error details", "error", err)

		return st.Err()
	}

	return detailed.Err()
}

// FieldViolations extracts the field names of an InvalidArgument status.
func FieldViolations(err error) []string {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}

	var fields []string

	for _, detail := range st.Details() {
		if badRequest, ok := detail.(*errdetails.BadRequest); ok {
			for _, v := range badRequest.GetFieldViolations() {
				fields = append(fields, v.GetField())
			}
		}
	}

	return fields
}
