// Package release implements the durable registry of published releases.
//
// Store persists records through gorm in a single "releases" table keyed by
// (platform, arch, channel, version precedence). Uniqueness is enforced by a
// composite unique index, so concurrent inserts of the same key resolve to
// exactly one success and ErrConflict for the rest without any application
// level locking.
package release
