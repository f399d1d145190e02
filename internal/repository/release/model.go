package release

import (
	"time"

	domain "github.com/oshokin/release-server/internal/domain/release"
)

// releaseRow is the persisted form of a domain.Record.
type releaseRow struct {
	// ID is the surrogate primary key; it never leaves this package.
	ID uint `gorm:"primaryKey"`
	// Platform, Arch, Channel and VersionKey form the unique release key.
	Platform string `gorm:"type:varchar(64);not null;uniqueIndex:idx_release_key,priority:1;index:idx_release_order,priority:1"`
	Arch     string `gorm:"type:varchar(64);not null;uniqueIndex:idx_release_key,priority:2;index:idx_release_order,priority:2"`
	Channel  string `gorm:"type:varchar(64);not null;uniqueIndex:idx_release_key,priority:3;index:idx_release_order,priority:3"`
	// VersionKey is the version without build metadata, so that versions of
	// equal precedence collide on the unique index.
	VersionKey string `gorm:"type:varchar(128);not null;uniqueIndex:idx_release_key,priority:4"`
	// Version is the version exactly as published.
	Version string `gorm:"type:varchar(192);not null"`
	// Major, Minor and Patch support greatest-version-per-group lookups.
	Major      uint64 `gorm:"not null;index:idx_release_order,priority:4"`
	Minor      uint64 `gorm:"not null;index:idx_release_order,priority:5"`
	Patch      uint64 `gorm:"not null;index:idx_release_order,priority:6"`
	Prerelease bool   `gorm:"not null;default:false"`
	// Checksum is the artifact content hash.
	Checksum string `gorm:"type:varchar(255);not null"`
	// ArtifactURL is the opaque artifact reference.
	ArtifactURL string `gorm:"type:text;not null"`
	// Signature is the optional detached signature.
	Signature string `gorm:"type:text"`
	// Notes holds the release notes.
	Notes string `gorm:"type:text"`
	// PublishedAt is the publication time used as tie-break.
	PublishedAt time.Time `gorm:"not null"`
	// CreatedAt is filled by gorm on insert.
	CreatedAt time.Time
}

// TableName pins the table name regardless of naming strategy.
func (releaseRow) TableName() string {
	return "releases"
}

// toRow converts a record into its persisted form.
// The version must parse; anything else is rejected before reaching the database.
func toRow(r *domain.Record) (*releaseRow, error) {
	v, err := domain.ParseVersion(r.Version)
	if err != nil {
		return nil, domain.NewFieldError(domain.FieldVersion, r.Version, err)
	}

	return &releaseRow{
		Platform:    r.Platform,
		Arch:        r.Arch,
		Channel:     r.Channel,
		VersionKey:  v.PrecedenceKey(),
		Version:     r.Version,
		Major:       v.Major(),
		Minor:       v.Minor(),
		Patch:       v.Patch(),
		Prerelease:  v.IsPrerelease(),
		Checksum:    r.Checksum,
		ArtifactURL: r.ArtifactURL,
		Signature:   r.Signature,
		Notes:       r.Notes,
		PublishedAt: r.PublishedAt.UTC(),
	}, nil
}

// toRecord converts a persisted row into a domain record.
// The version string is passed through untouched; the resolver decides
// whether it is still usable.
func (row *releaseRow) toRecord() *domain.Record {
	return &domain.Record{
		Platform:    row.Platform,
		Arch:        row.Arch,
		Channel:     row.Channel,
		Version:     row.Version,
		Checksum:    row.Checksum,
		ArtifactURL: row.ArtifactURL,
		Signature:   row.Signature,
		Notes:       row.Notes,
		PublishedAt: row.PublishedAt.UTC(),
	}
}
