package release

import (
	"context"
	"fmt"

	"github.com/oshokin/release-server/internal/logger"
)

// Resolve picks the release a client described by query should move to.
//
// Candidates with a malformed stored version are logged as store integrity
// faults and skipped. Of the remaining candidates only those strictly greater
// than the current version qualify; the greatest one wins, and equal versions
// are broken by the latest PublishedAt. Resolve never mutates its inputs.
func Resolve(ctx context.Context, query *Query, candidates []*Record) Decision {
	best, ok := greatest(ctx, candidates, &query.Current)
	if !ok {
		return NoUpdate()
	}

	return UpdateAvailable(best.Clone())
}

// Latest returns the greatest valid release among candidates.
func Latest(ctx context.Context, candidates []*Record) (*Record, bool) {
	best, ok := greatest(ctx, candidates, nil)
	if !ok {
		return nil, false
	}

	return best.Clone(), true
}

// greatest returns the candidate with the highest precedence that is strictly
// above floor, or any valid candidate when floor is nil.
func greatest(ctx context.Context, candidates []*Record, floor *Version) (*Record, bool) {
	var (
		best        *Record
		bestVersion Version
	)

	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}

		v, err := ParseVersion(candidate.Version)
		if err != nil {
			logger.ErrorKV(ctx, "Skipping stored release",
				"key", candidate.Key().String(),
				"error", fmt.Errorf("%w: %w", ErrStoreIntegrityFault, err))

			continue
		}

		if floor != nil && !v.GreaterThan(*floor) {
			continue
		}

		if best == nil {
			best, bestVersion = candidate, v
			continue
		}

		switch cmp := v.Compare(bestVersion); {
		case cmp > 0:
			best, bestVersion = candidate, v
		case cmp == 0 && candidate.PublishedAt.After(best.PublishedAt):
			best, bestVersion = candidate, v
		}
	}

	return best, best != nil
}
