package ingest

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/opencontainers/go-digest"

	domain "github.com/oshokin/release-server/internal/domain/release"
	"github.com/oshokin/release-server/internal/logger"
	repo "github.com/oshokin/release-server/internal/repository/release"

	// Register the hash functions accepted in digest-form checksums.
	_ "crypto/sha256"
	_ "crypto/sha512"
)

// Repository is the write side of the release store.
type Repository interface {
	Insert(ctx context.Context, record *domain.Record) error
	Candidates(ctx context.Context, group domain.Group) ([]*domain.Record, error)
	Delete(ctx context.Context, key domain.Key) (bool, error)
}

// Invalidator drops cached resolution state of a group.
type Invalidator interface {
	Invalidate(group domain.Group)
}

// Option configures the service.
type Option func(*Service)

// WithInvalidator registers a cache to invalidate after every accepted change.
func WithInvalidator(invalidator Invalidator) Option {
	return func(s *Service) {
		if invalidator != nil {
			s.invalidators = append(s.invalidators, invalidator)
		}
	}
}

// WithClock overrides the source of default publication times.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service accepts and retracts releases.
type Service struct {
	// repo persists records.
	repo Repository
	// policy holds the acceptance rules.
	policy *Policy
	// invalidators are notified of every accepted change.
	invalidators []Invalidator
	// now stamps releases published without a time.
	now func() time.Time
}

// maxChecksumLength matches the width of the checksum column.
const maxChecksumLength = 255

// NewService creates an ingestion service.
func NewService(repository Repository, policy *Policy, opts ...Option) *Service {
	if policy == nil {
		policy = &Policy{AllowBackfill: true}
	}

	s := &Service{
		repo:   repository,
		policy: policy,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Ingest validates record and stores it.
// It returns the stored form: identifiers normalized, the version canonical and
// PublishedAt set. Invalid records never reach the store.
func (s *Service) Ingest(ctx context.Context, record *domain.Record) (*domain.Record, error) {
	normalized, err := s.validate(record)
	if err != nil {
		logger.WarnKV(ctx, "Release rejected", "error", err)

		return nil, err
	}

	if !s.policy.AllowBackfill {
		if err := s.checkBackfill(ctx, normalized); err != nil {
			return nil, err
		}
	}

	err = s.repo.Insert(ctx, normalized)
	switch {
	case err == nil:
	case errors.Is(err, repo.ErrConflict):
		logger.WarnKV(ctx, "Duplicate release rejected", "key", normalized.Key().String())

		return nil, fmt.Errorf("ingest %s: %w", normalized.Key(), domain.ErrDuplicateRelease)
	default:
		logger.ErrorKV(ctx, "Failed to store release", "key", normalized.Key().String(), "error", err)

		return nil, fmt.Errorf("ingest %s: %w", normalized.Key(), err)
	}

	s.invalidate(normalized.Group())

	logger.InfoKV(ctx, "Release published",
		"key", normalized.Key().String(),
		"checksum", normalized.Checksum,
		"signed", normalized.Signature != "")

	return normalized.Clone(), nil
}

// Retract removes the release identified by key. Retracting an absent release is not an error.
func (s *Service) Retract(ctx context.Context, key domain.Key) error {
	group, err := domain.NewGroup(key.Platform, key.Arch, key.Channel)
	if err != nil {
		return err
	}

	v, err := domain.ParseVersion(key.Version)
	if err != nil {
		return domain.NewFieldError(domain.FieldVersion, key.Version, err)
	}

	key = domain.Key{Group: group, Version: v.String()}

	existed, err := s.repo.Delete(ctx, key)
	if err != nil {
		logger.ErrorKV(ctx, "Failed to retract release", "key", key.String(), "error", err)

		return fmt.Errorf("retract %s: %w", key, err)
	}

	// Invalidate even when nothing was deleted: a concurrent reader may hold stale state.
	s.invalidate(group)

	logger.WarnKV(ctx, "Release retracted", "key", key.String(), "existed", existed)

	return nil
}

// validate returns a normalized copy of record or the first validation failure.
func (s *Service) validate(record *domain.Record) (*domain.Record, error) {
	if record == nil {
		return nil, domain.NewFieldError(domain.FieldVersion, "", domain.ErrInvalidVersion)
	}

	normalized := record.Clone()

	v, err := domain.ParseVersion(normalized.Version)
	if err != nil {
		return nil, domain.NewFieldError(domain.FieldVersion, normalized.Version, err)
	}

	normalized.Version = v.String()
	if len(normalized.Version) > domain.MaxVersionLength || len(v.PrecedenceKey()) > domain.MaxPrecedenceKeyLength {
		return nil, domain.NewFieldError(domain.FieldVersion, normalized.Version,
			fmt.Errorf("%w: too long to store", domain.ErrInvalidVersion))
	}

	group, err := domain.NewGroup(normalized.Platform, normalized.Arch, normalized.Channel)
	if err != nil {
		return nil, err
	}

	if err := s.policy.admits(group); err != nil {
		return nil, err
	}

	normalized.Platform, normalized.Arch, normalized.Channel = group.Platform, group.Arch, group.Channel

	normalized.Checksum = strings.TrimSpace(normalized.Checksum)
	if err := validateChecksum(normalized.Checksum); err != nil {
		return nil, err
	}

	normalized.ArtifactURL = strings.TrimSpace(normalized.ArtifactURL)
	if err := validateArtifactURL(normalized.ArtifactURL); err != nil {
		return nil, err
	}

	normalized.Signature = strings.TrimSpace(normalized.Signature)
	if s.policy.RequireSignature && normalized.Signature == "" {
		return nil, domain.NewFieldError(domain.FieldSignature, "", domain.ErrIntegrityPolicyViolation)
	}

	if normalized.PublishedAt.IsZero() {
		normalized.PublishedAt = s.now()
	}

	normalized.PublishedAt = normalized.PublishedAt.UTC()

	return normalized, nil
}

// checkBackfill rejects a version below the current greatest of its group.
// The check and the insert are not atomic; two concurrent publishers may both pass.
func (s *Service) checkBackfill(ctx context.Context, record *domain.Record) error {
	candidates, err := s.repo.Candidates(ctx, record.Group())
	if err != nil {
		return fmt.Errorf("check backfill: %w", err)
	}

	latest, ok := domain.Latest(ctx, candidates)
	if !ok {
		return nil
	}

	incoming := domain.MustParseVersion(record.Version)
	current := domain.MustParseVersion(latest.Version)

	if incoming.Compare(current) < 0 {
		logger.WarnKV(ctx, "Backfill rejected", "key", record.Key().String(), "latest", latest.Version)

		return fmt.Errorf("%s is below %s: %w", record.Version, latest.Version, domain.ErrBackfillRejected)
	}

	return nil
}

func (s *Service) invalidate(group domain.Group) {
	for _, invalidator := range s.invalidators {
		invalidator.Invalidate(group)
	}
}

// validateChecksum accepts opaque hashes and, when the value has an
// algorithm prefix, well-formed OCI digests only.
func validateChecksum(checksum string) error {
	if checksum == "" || len(checksum) > maxChecksumLength || strings.IndexFunc(checksum, unicode.IsSpace) >= 0 {
		return domain.NewFieldError(domain.FieldChecksum, checksum, domain.ErrInvalidField)
	}

	if !strings.Contains(checksum, ":") {
		return nil
	}

	if _, err := digest.Parse(checksum); err != nil {
		return domain.NewFieldError(domain.FieldChecksum, checksum, fmt.Errorf("%w: %w", domain.ErrInvalidField, err))
	}

	return nil
}

// validateArtifactURL accepts any non-empty URI reference without whitespace.
func validateArtifactURL(raw string) error {
	if raw == "" || strings.IndexFunc(raw, unicode.IsSpace) >= 0 {
		return domain.NewFieldError(domain.FieldArtifactURL, raw, domain.ErrInvalidField)
	}

	if _, err := url.Parse(raw); err != nil {
		return domain.NewFieldError(domain.FieldArtifactURL, raw, fmt.Errorf("%w: %w", domain.ErrInvalidField, err))
	}

	return nil
}
