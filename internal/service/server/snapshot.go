package server

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	domain "github.com/oshokin/release-server/internal/domain/release"
	"github.com/oshokin/release-server/internal/logger"
	repo "github.com/oshokin/release-server/internal/repository/release"
	"github.com/oshokin/release-server/internal/repository/snapshot"
	"github.com/oshokin/release-server/internal/service/ingest"
)

// ImportReport summarizes an import run.
type ImportReport struct {
	// Imported counts releases written to the store.
	Imported int
	// Skipped counts releases that were already present.
	Skipped int
}

// Export writes every stored release to the snapshot file at path.
func Export(ctx context.Context, opts *Options, path string) (int, error) {
	settings, err := loadSettings(ctx, opts)
	if err != nil {
		return 0, err
	}

	if err = applyLogging(settings); err != nil {
		return 0, err
	}

	ctx = logger.WithName(ctx, "release-server-export")

	store, err := repo.Open(ctx, &settings.Database)
	if err != nil {
		return 0, fmt.Errorf("open release store: %w", err)
	}
	defer closeStore(ctx, store)

	records, err := store.List(ctx, repo.Filter{})
	if err != nil {
		return 0, fmt.Errorf("list releases: %w", err)
	}

	err = snapshot.NewFileRepository(path).Save(ctx, &snapshot.Snapshot{
		ExportedAt: time.Now().UTC(),
		Releases:   records,
	})
	if err != nil {
		return 0, err
	}

	logger.InfoKV(ctx, "Releases exported", "path", path, "count", len(records))

	return len(records), nil
}

// Import publishes every release of the snapshot at path through the regular
// ingestion rules. Releases already present are skipped; any other rejection
// stops the import.
func Import(ctx context.Context, opts *Options, path string) (*ImportReport, error) {
	settings, err := loadSettings(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err = applyLogging(settings); err != nil {
		return nil, err
	}

	ctx = logger.WithName(ctx, "release-server-import")

	contents, err := snapshot.NewFileRepository(path).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", path, err)
	}

	policy, err := ingest.NewPolicy(&settings.Policy)
	if err != nil {
		return nil, fmt.Errorf("compile policy: %w", err)
	}

	store, err := repo.Open(ctx, &settings.Database)
	if err != nil {
		return nil, fmt.Errorf("open release store: %w", err)
	}
	defer closeStore(ctx, store)

	report, err := importRecords(ctx, ingest.NewService(store, policy), contents.Releases)
	if err != nil {
		return report, err
	}

	logger.InfoKV(ctx, "Releases imported",
		"path", path,
		"imported", report.Imported,
		"skipped", report.Skipped)

	return report, nil
}

// importRecords ingests records oldest first so that a store refusing
// backfill accepts a snapshot taken from one that allowed it only in order.
func importRecords(ctx context.Context, ingester *ingest.Service, records []*domain.Record) (*ImportReport, error) {
	ordered := slices.Clone(records)
	slices.SortStableFunc(ordered, func(a, b *domain.Record) int {
		return a.PublishedAt.Compare(b.PublishedAt)
	})

	report := new(ImportReport)

	for _, record := range ordered {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		_, err := ingester.Ingest(ctx, record)

		switch {
		case err == nil:
			report.Imported++
		case errors.Is(err, domain.ErrDuplicateRelease):
			report.Skipped++
		default:
			return report, fmt.Errorf("import %s: %w", record.Key(), err)
		}
	}

	return report, nil
}

func closeStore(ctx context.Context, store *repo.Store) {
	if err := store.Close(); err != nil {
		logger.ErrorKV(ctx, "Failed to close release store", "error", err)
	}
}
