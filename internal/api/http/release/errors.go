package release

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/oshokin/release-server/internal/domain/release"
	"github.com/oshokin/release-server/internal/logger"
)

// Error codes of errorBody.
const (
	codeInvalidVersion    = "invalid_version"
	codeInvalidPayload    = "invalid_payload"
	codeDuplicateRelease  = "duplicate_release"
	codeIntegrityPolicy   = "integrity_policy_violation"
	codeBackfillRejected  = "backfill_rejected"
	codeStoreUnavailable  = "store_unavailable"
	codeUnauthorized      = "unauthorized"
	codeNotFound          = "not_found"
	codeInternal          = "internal"
	invalidFieldPrefix    = "invalid_"
	retryAfterSeconds     = 5
	internalErrorResponse = "internal server error"
)

// classify maps err onto an HTTP status and error body. On read requests an
// integrity policy violation comes from stored data, so it is a server fault.
func classify(err error, read bool) (int, errorBody) {
	var fieldErr *domain.FieldError

	hasField := errors.As(err, &fieldErr)

	body := errorBody{Message: err.Error()}
	if hasField {
		body.Field = fieldErr.Field
	}

	switch {
	case errors.Is(err, domain.ErrIntegrityPolicyViolation) && read:
		return http.StatusInternalServerError, errorBody{
			Code:    codeIntegrityPolicy,
			Message: "stored release does not satisfy the integrity policy",
		}
	case errors.Is(err, domain.ErrIntegrityPolicyViolation):
		body.Code = codeIntegrityPolicy

		return http.StatusUnprocessableEntity, body
	case errors.Is(err, domain.ErrBackfillRejected):
		body.Code = codeBackfillRejected

		return http.StatusUnprocessableEntity, body
	case errors.Is(err, domain.ErrDuplicateRelease):
		body.Code = codeDuplicateRelease

		return http.StatusConflict, body
	case errors.Is(err, domain.ErrInvalidVersion):
		body.Code = codeInvalidVersion

		return http.StatusBadRequest, body
	case hasField && errors.Is(err, domain.ErrInvalidField):
		body.Code = invalidFieldPrefix + fieldErr.Field

		return http.StatusBadRequest, body
	case errors.Is(err, domain.ErrStoreUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		body.Code = codeStoreUnavailable
		body.Message = "release store is temporarily unavailable"

		return http.StatusServiceUnavailable, body
	default:
		return http.StatusInternalServerError, errorBody{
			Code:    codeInternal,
			Message: internalErrorResponse,
		}
	}
}

// abortWithError writes the response for err and stops the handler chain.
func abortWithError(c *gin.Context, err error) {
	read := c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead
	status, body := classify(err, read)

	switch {
	case status == http.StatusServiceUnavailable:
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
		logger.WarnKV(c.Request.Context(), "Store unavailable", "error", err)
	case status >= http.StatusInternalServerError:
		logger.ErrorKV(c.Request.Context(), "Request failed", "error", err)
	}

	c.AbortWithStatusJSON(status, body)
}

// schemaFieldCodes maps body fields onto the codes ingestion reports for them.
var schemaFieldCodes = map[string]string{
	domain.FieldPlatform:    invalidFieldPrefix + domain.FieldPlatform,
	domain.FieldArch:        invalidFieldPrefix + domain.FieldArch,
	domain.FieldChannel:     invalidFieldPrefix + domain.FieldChannel,
	domain.FieldVersion:     codeInvalidVersion,
	domain.FieldChecksum:    invalidFieldPrefix + domain.FieldChecksum,
	domain.FieldArtifactURL: invalidFieldPrefix + domain.FieldArtifactURL,
	domain.FieldSignature:   invalidFieldPrefix + domain.FieldSignature,
}

// abortWithSchemaError writes a 400 for a body the JSON Schema rejected,
// naming the offending field when the failure points at one.
func abortWithSchemaError(c *gin.Context, err error) {
	body := errorBody{
		Code:    codeInvalidPayload,
		Field:   schemaField(err),
		Message: err.Error(),
	}

	if code, ok := schemaFieldCodes[body.Field]; ok {
		body.Code = code
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, body)
}

// abortWithCode writes an error body with an explicit code.
func abortWithCode(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorBody{
		Code:    code,
		Message: message,
	})
}
