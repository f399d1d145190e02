package update

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	domain "github.com/oshokin/release-server/internal/domain/release"
)

// latestEntry is the cached greatest release of a group; release is nil for empty groups.
type latestEntry struct {
	release *domain.Record
}

// latestCache keeps the greatest valid release per group for a bounded time.
//
// A generation counter per group is bumped on every invalidation; a reader
// only stores what it loaded if no invalidation happened in between, so a
// slow read cannot re-populate data older than a finished ingestion.
type latestCache struct {
	entries *cache.Cache

	// mu protects generations.
	mu          sync.Mutex
	generations map[domain.Group]uint64
}

func newLatestCache(ttl time.Duration) *latestCache {
	return &latestCache{
		entries:     cache.New(ttl, 2*ttl),
		generations: make(map[domain.Group]uint64),
	}
}

// get returns the cached entry of group.
func (c *latestCache) get(group domain.Group) (latestEntry, bool) {
	value, ok := c.entries.Get(group.String())
	if !ok {
		return latestEntry{}, false
	}

	entry, ok := value.(latestEntry)

	return entry, ok
}

// generation returns the current invalidation counter of group.
func (c *latestCache) generation(group domain.Group) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.generations[group]
}

// set stores entry unless group was invalidated after generation gen was read.
func (c *latestCache) set(group domain.Group, gen uint64, entry latestEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[group] != gen {
		return
	}

	c.entries.SetDefault(group.String(), entry)
}

// invalidate drops the entry of group and bumps its generation.
func (c *latestCache) invalidate(group domain.Group) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generations[group]++
	c.entries.Delete(group.String())
}
