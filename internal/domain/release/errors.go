package release

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidVersion is returned when a version string is not a valid semantic version.
	ErrInvalidVersion = errors.New("invalid version")
	// ErrInvalidField is returned when an identifying or integrity field is malformed.
	ErrInvalidField = errors.New("invalid field")
	// ErrDuplicateRelease is returned when a release with the same key already exists.
	ErrDuplicateRelease = errors.New("release already exists")
	// ErrIntegrityPolicyViolation is returned when a signature is required but missing.
	ErrIntegrityPolicyViolation = errors.New("integrity policy violation")
	// ErrBackfillRejected is returned when a version lower than the latest is published
	// while backfilling is disabled.
	ErrBackfillRejected = errors.New("version is lower than the latest published release")
	// ErrStoreUnavailable marks a transient persistence failure; callers may retry.
	ErrStoreUnavailable = errors.New("release store unavailable")
	// ErrStoreIntegrityFault marks a stored record that can no longer be interpreted.
	ErrStoreIntegrityFault = errors.New("stored release is corrupted")
)

// Field names reported by FieldError.
const (
	FieldPlatform       = "platform"
	FieldArch           = "arch"
	FieldChannel        = "channel"
	FieldVersion        = "version"
	FieldCurrentVersion = "current_version"
	FieldChecksum       = "checksum"
	FieldArtifactURL    = "artifact_url"
	FieldSignature      = "signature"
)

// FieldError identifies the input field that failed validation.
type FieldError struct {
	// Field is the wire name of the offending field.
	Field string
	// Value is the rejected input.
	Value string
	// Err is the error kind, usually ErrInvalidVersion or ErrInvalidField.
	Err error
}

// NewFieldError wraps err with the field it refers to.
func NewFieldError(field, value string, err error) *FieldError {
	return &FieldError{
		Field: field,
		Value: value,
		Err:   err,
	}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
