package release

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oshokin/release-server/internal/config"
	domain "github.com/oshokin/release-server/internal/domain/release"

	// Pure Go SQLite driver registered as "sqlite".
	_ "modernc.org/sqlite"
)

// Repository defines persistence operations for release records.
type Repository interface {
	Insert(ctx context.Context, record *domain.Record) error
	Candidates(ctx context.Context, group domain.Group) ([]*domain.Record, error)
	Delete(ctx context.Context, key domain.Key) (bool, error)
	List(ctx context.Context, filter Filter) ([]*domain.Record, error)
}

// Filter narrows List results. Empty fields match everything.
type Filter struct {
	// Platform restricts results to one platform.
	Platform string
	// Arch restricts results to one architecture.
	Arch string
	// Channel restricts results to one channel.
	Channel string
}

// Store is the gorm-backed Repository.
type Store struct {
	// db is the shared connection pool.
	db *gorm.DB
}

var (
	// ErrConflict is returned when a record with the same key already exists.
	ErrConflict = errors.New("release key already exists")
	// errUnknownDriver is returned for unsupported database drivers.
	errUnknownDriver = errors.New("unknown database driver")
)

const (
	// sqliteDriverName is the database/sql name of the modernc.org/sqlite driver.
	sqliteDriverName = "sqlite"

	// sqliteDefaultParams tune SQLite for concurrent readers and writers:
	// writers wait for the lock instead of failing, and transactions take the
	// write lock up front.
	sqliteDefaultParams = "_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_txlock=immediate"

	// candidateOrder lists greatest versions first; pre-releases sort after
	// the release with the same numbers.
	candidateOrder = "major DESC, minor DESC, patch DESC, prerelease ASC, published_at DESC"
)

// Open connects to the configured database and migrates the schema.
func Open(ctx context.Context, cfg *config.Database) (*Store, error) {
	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, storeError("open "+cfg.Driver, err)
	}

	store := &Store{
		db: db,
	}

	if err := store.db.WithContext(ctx).AutoMigrate(new(releaseRow)); err != nil {
		_ = store.Close()

		return nil, storeError("migrate schema", err)
	}

	return store, nil
}

// newDialector selects the gorm dialector for the configured driver.
//
//nolint:ireturn // gorm.Dialector is the type gorm.Open accepts.
func newDialector(cfg *config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		dsn := cfg.DSN
		if dsn == "" {
			dsn = config.DefaultSQLiteFilename
		}

		if !strings.Contains(dsn, "?") {
			dsn += "?" + sqliteDefaultParams
		}

		return sqlite.New(sqlite.Config{
			DriverName: sqliteDriverName,
			DSN:        dsn,
		}), nil
	case config.DriverMySQL:
		return mysql.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownDriver, cfg.Driver)
	}
}

// Insert stores a new record atomically.
// It returns ErrConflict when the key is taken; the existing record is left untouched.
func (s *Store) Insert(ctx context.Context, record *domain.Record) error {
	row, err := toRow(record)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrConflict
		}

		return nil
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("insert %s: %w", record.Key(), ErrConflict)
	default:
		return storeError("insert release", err)
	}
}

// Candidates returns every record of the group, greatest version first.
func (s *Store) Candidates(ctx context.Context, group domain.Group) ([]*domain.Record, error) {
	var rows []releaseRow

	err := s.db.WithContext(ctx).
		Where("platform = ? AND arch = ? AND channel = ?", group.Platform, group.Arch, group.Channel).
		Order(candidateOrder).
		Find(&rows).Error
	if err != nil {
		return nil, storeError("query candidates", err)
	}

	return toRecords(rows), nil
}

// Delete removes the record with the given key and reports whether it existed.
func (s *Store) Delete(ctx context.Context, key domain.Key) (bool, error) {
	v, err := domain.ParseVersion(key.Version)
	if err != nil {
		return false, domain.NewFieldError(domain.FieldVersion, key.Version, err)
	}

	result := s.db.WithContext(ctx).
		Where("platform = ? AND arch = ? AND channel = ? AND version_key = ?",
			key.Platform, key.Arch, key.Channel, v.PrecedenceKey()).
		Delete(new(releaseRow))
	if result.Error != nil {
		return false, storeError("delete release", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// List returns the records matching filter, most recently published first.
func (s *Store) List(ctx context.Context, filter Filter) ([]*domain.Record, error) {
	query := s.db.WithContext(ctx).Model(new(releaseRow))

	if filter.Platform != "" {
		query = query.Where("platform = ?", filter.Platform)
	}

	if filter.Arch != "" {
		query = query.Where("arch = ?", filter.Arch)
	}

	if filter.Channel != "" {
		query = query.Where("channel = ?", filter.Channel)
	}

	var rows []releaseRow
	if err := query.Order("published_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, storeError("list releases", err)
	}

	return toRecords(rows), nil
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return storeError("ping", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return storeError("ping", err)
	}

	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func toRecords(rows []releaseRow) []*domain.Record {
	records := make([]*domain.Record, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].toRecord())
	}

	return records
}

// storeError classifies a database failure as a retryable store outage.
func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
