package update

import (
	"context"
	"fmt"
	"time"

	domain "github.com/oshokin/release-server/internal/domain/release"
	"github.com/oshokin/release-server/internal/logger"
	repo "github.com/oshokin/release-server/internal/repository/release"
)

// Repository is the read side of the release store.
type Repository interface {
	Candidates(ctx context.Context, group domain.Group) ([]*domain.Record, error)
	List(ctx context.Context, filter repo.Filter) ([]*domain.Record, error)
}

// Answer is the outcome of an update check.
// Manifest is set exactly when Decision offers a release.
type Answer struct {
	// Decision is the resolver's verdict.
	Decision domain.Decision
	// Manifest describes the offered release.
	Manifest *domain.Manifest
}

// Option configures the service.
type Option func(*Service)

// WithCache enables the latest-release cache with the given lifetime.
func WithCache(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.cache = newLatestCache(ttl)
		}
	}
}

// Service answers update checks.
type Service struct {
	// repo provides candidate sets.
	repo Repository
	// builder turns decisions into manifests.
	builder *domain.ManifestBuilder
	// cache is nil when caching is disabled.
	cache *latestCache
}

// NewService creates a service reading from repository.
func NewService(repository Repository, builder *domain.ManifestBuilder, opts ...Option) *Service {
	s := &Service{
		repo:    repository,
		builder: builder,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Check resolves the release the querying client should move to.
func (s *Service) Check(ctx context.Context, query *domain.Query) (*Answer, error) {
	candidates, err := s.candidates(ctx, query.Group)
	if err != nil {
		return nil, err
	}

	decision := domain.Resolve(ctx, query, candidates)

	answer, err := s.answer(decision)
	if err != nil {
		return nil, err
	}

	if answer.Manifest != nil {
		logger.InfoKV(ctx, "Update available",
			"group", query.Group.String(), "from", query.Current.String(), "to", answer.Manifest.Version)
	} else {
		logger.DebugKV(ctx, "No update available", "group", query.Group.String(), "current", query.Current.String())
	}

	return answer, nil
}

// Latest returns the greatest release of group regardless of any client version.
func (s *Service) Latest(ctx context.Context, group domain.Group) (*Answer, error) {
	candidates, err := s.candidates(ctx, group)
	if err != nil {
		return nil, err
	}

	latest, ok := domain.Latest(ctx, candidates)
	if !ok {
		return s.answer(domain.NoUpdate())
	}

	return s.answer(domain.UpdateAvailable(latest))
}

// List returns published releases matching filter.
func (s *Service) List(ctx context.Context, filter repo.Filter) ([]*domain.Record, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}

	return records, nil
}

// Invalidate forgets cached state of group. It is safe to call with caching disabled.
func (s *Service) Invalidate(group domain.Group) {
	if s.cache == nil {
		return
	}

	s.cache.invalidate(group)
}

// candidates returns the candidate set of group.
// With the cache enabled a hit yields only the latest release, which resolves
// to the same decision as the full set.
func (s *Service) candidates(ctx context.Context, group domain.Group) ([]*domain.Record, error) {
	if s.cache == nil {
		return s.load(ctx, group)
	}

	if entry, ok := s.cache.get(group); ok {
		if entry.release == nil {
			return nil, nil
		}

		return []*domain.Record{entry.release}, nil
	}

	gen := s.cache.generation(group)

	candidates, err := s.load(ctx, group)
	if err != nil {
		return nil, err
	}

	latest, _ := domain.Latest(ctx, candidates)
	s.cache.set(group, gen, latestEntry{release: latest})

	return candidates, nil
}

func (s *Service) load(ctx context.Context, group domain.Group) ([]*domain.Record, error) {
	candidates, err := s.repo.Candidates(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("load candidates for %s: %w", group, err)
	}

	return candidates, nil
}

// answer attaches a manifest to an offering decision.
func (s *Service) answer(decision domain.Decision) (*Answer, error) {
	release, ok := decision.Release()
	if !ok {
		return &Answer{Decision: decision}, nil
	}

	manifest, err := s.builder.Build(release)
	if err != nil {
		return nil, fmt.Errorf("build manifest: %w", err)
	}

	return &Answer{
		Decision: decision,
		Manifest: manifest,
	}, nil
}
