package update

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/release-server/internal/domain/release"
	repo "github.com/oshokin/release-server/internal/repository/release"
)

var testGroup = domain.Group{Platform: "linux", Arch: "x64", Channel: "stable"}

// fakeRepository serves an in-memory candidate set and counts loads.
type fakeRepository struct {
	mu      sync.Mutex
	records []*domain.Record
	err     error
	loads   atomic.Int64
}

func (f *fakeRepository) Candidates(_ context.Context, group domain.Group) ([]*domain.Record, error) {
	f.loads.Add(1)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	result := make([]*domain.Record, 0, len(f.records))
	for _, r := range f.records {
		if r.Group() == group {
			result = append(result, r.Clone())
		}
	}

	return result, nil
}

func (f *fakeRepository) List(_ context.Context, _ repo.Filter) ([]*domain.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	return f.records, nil
}

func (f *fakeRepository) add(records ...*domain.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.records = append(f.records, records...)
}

func testRecord(version string) *domain.Record {
	return &domain.Record{
		Platform:    testGroup.Platform,
		Arch:        testGroup.Arch,
		Channel:     testGroup.Channel,
		Version:     version,
		Checksum:    "sha256:abc",
		ArtifactURL: "https://cdn.example.com/app-" + version,
		PublishedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func mustQuery(t *testing.T, current string) *domain.Query {
	t.Helper()

	q, err := domain.NewQuery(testGroup.Platform, testGroup.Arch, testGroup.Channel, current)
	require.NoError(t, err)

	return q
}

// TestService_Check covers the update and no-update outcomes.
func TestService_Check(t *testing.T) {
	t.Parallel()

	fake := &fakeRepository{}
	fake.add(testRecord("1.2.0"), testRecord("1.3.0"), testRecord("1.3.1-beta"))

	svc := NewService(fake, domain.NewManifestBuilder(domain.Policy{}))
	ctx := context.Background()

	answer, err := svc.Check(ctx, mustQuery(t, "1.2.0"))
	require.NoError(t, err)
	require.True(t, answer.Decision.HasUpdate())
	require.NotNil(t, answer.Manifest)
	require.Equal(t, "1.3.1-beta", answer.Manifest.Version)
	require.Equal(t, "https://cdn.example.com/app-1.3.1-beta", answer.Manifest.ArtifactURL)

	answer, err = svc.Check(ctx, mustQuery(t, "2.0.0"))
	require.NoError(t, err)
	require.False(t, answer.Decision.HasUpdate())
	require.Nil(t, answer.Manifest)
}

// TestService_CheckStoreFailure verifies store errors surface unchanged in kind.
func TestService_CheckStoreFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeRepository{err: domain.ErrStoreUnavailable}
	svc := NewService(fake, domain.NewManifestBuilder(domain.Policy{}))

	_, err := svc.Check(context.Background(), mustQuery(t, "1.0.0"))
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

// TestService_CheckRequiresSignature verifies unsigned releases are withheld under the policy.
func TestService_CheckRequiresSignature(t *testing.T) {
	t.Parallel()

	fake := &fakeRepository{}
	fake.add(testRecord("1.3.0"))

	svc := NewService(fake, domain.NewManifestBuilder(domain.Policy{RequireSignature: true}))

	_, err := svc.Check(context.Background(), mustQuery(t, "1.2.0"))
	require.ErrorIs(t, err, domain.ErrIntegrityPolicyViolation)

	// Clients already on the latest version are not affected.
	answer, err := svc.Check(context.Background(), mustQuery(t, "1.3.0"))
	require.NoError(t, err)
	require.False(t, answer.Decision.HasUpdate())
}

// TestService_Latest returns the greatest release irrespective of a client version.
func TestService_Latest(t *testing.T) {
	t.Parallel()

	fake := &fakeRepository{}
	svc := NewService(fake, domain.NewManifestBuilder(domain.Policy{}))

	answer, err := svc.Latest(context.Background(), testGroup)
	require.NoError(t, err)
	require.False(t, answer.Decision.HasUpdate())

	fake.add(testRecord("0.9.0"), testRecord("1.0.0"))

	answer, err = svc.Latest(context.Background(), testGroup)
	require.NoError(t, err)
	require.Equal(t, "1.0.0", answer.Manifest.Version)
}

// TestService_List passes records through and wraps failures.
func TestService_List(t *testing.T) {
	t.Parallel()

	fake := &fakeRepository{}
	fake.add(testRecord("1.0.0"))

	svc := NewService(fake, domain.NewManifestBuilder(domain.Policy{}))

	records, err := svc.List(context.Background(), repo.Filter{})
	require.NoError(t, err)
	require.Len(t, records, 1)

	fake.err = errors.New("boom")

	_, err = svc.List(context.Background(), repo.Filter{})
	require.Error(t, err)
}

// TestService_CacheServesAndInvalidates checks cache hits and read-your-writes after Invalidate.
func TestService_CacheServesAndInvalidates(t *testing.T) {
	t.Parallel()

	fake := &fakeRepository{}
	fake.add(testRecord("1.2.0"), testRecord("1.3.0"))

	svc := NewService(fake, domain.NewManifestBuilder(domain.Policy{}), WithCache(time.Minute))
	ctx := context.Background()

	for range 5 {
		answer, err := svc.Check(ctx, mustQuery(t, "1.0.0"))
		require.NoError(t, err)
		require.Equal(t, "1.3.0", answer.Manifest.Version)
	}

	require.Equal(t, int64(1), fake.loads.Load())

	// Up-to-date clients are answered from the cached latest too.
	answer, err := svc.Check(ctx, mustQuery(t, "1.3.0"))
	require.NoError(t, err)
	require.False(t, answer.Decision.HasUpdate())
	require.Equal(t, int64(1), fake.loads.Load())

	fake.add(testRecord("1.4.0"))
	svc.Invalidate(testGroup)

	answer, err = svc.Check(ctx, mustQuery(t, "1.0.0"))
	require.NoError(t, err)
	require.Equal(t, "1.4.0", answer.Manifest.Version)
	require.Equal(t, int64(2), fake.loads.Load())
}

// TestService_CacheEmptyGroup checks that an empty group is cached as no update.
func TestService_CacheEmptyGroup(t *testing.T) {
	t.Parallel()

	fake := &fakeRepository{}
	svc := NewService(fake, domain.NewManifestBuilder(domain.Policy{}), WithCache(time.Minute))

	for range 3 {
		answer, err := svc.Check(context.Background(), mustQuery(t, "1.0.0"))
		require.NoError(t, err)
		require.False(t, answer.Decision.HasUpdate())
	}

	require.Equal(t, int64(1), fake.loads.Load())
}

// TestLatestCache_StaleSetIsDropped verifies a load racing an invalidation is not stored.
func TestLatestCache_StaleSetIsDropped(t *testing.T) {
	t.Parallel()

	c := newLatestCache(time.Minute)

	gen := c.generation(testGroup)
	c.invalidate(testGroup)
	c.set(testGroup, gen, latestEntry{release: testRecord("1.0.0")})

	_, ok := c.get(testGroup)
	require.False(t, ok)

	gen = c.generation(testGroup)
	c.set(testGroup, gen, latestEntry{release: testRecord("1.1.0")})

	entry, ok := c.get(testGroup)
	require.True(t, ok)
	require.Equal(t, "1.1.0", entry.release.Version)
}

// TestService_InvalidateWithoutCache is a no-op.
func TestService_InvalidateWithoutCache(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepository{}, domain.NewManifestBuilder(domain.Policy{}))
	require.NotPanics(t, func() { svc.Invalidate(testGroup) })
}
