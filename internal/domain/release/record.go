package release

import (
	"regexp"
	"strings"
	"time"
)

// identifierPattern describes well-formed platform, arch and channel names.
var identifierPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{0,63}$`)

// Group partitions the version space: one update track per platform, arch and channel.
type Group struct {
	// Platform is the operating system identifier, e.g. "linux".
	Platform string
	// Arch is the CPU architecture, e.g. "x64" or "aarch64".
	Arch string
	// Channel is the release track, e.g. "stable" or "beta".
	Channel string
}

// NewGroup normalizes the identifiers to lower case and validates them.
func NewGroup(platform, arch, channel string) (Group, error) {
	g := Group{
		Platform: normalizeIdentifier(platform),
		Arch:     normalizeIdentifier(arch),
		Channel:  normalizeIdentifier(channel),
	}

	return g, g.Validate()
}

// Validate checks that every identifier is well-formed.
func (g Group) Validate() error {
	fields := [...]struct {
		name  string
		value string
	}{
		{FieldPlatform, g.Platform},
		{FieldArch, g.Arch},
		{FieldChannel, g.Channel},
	}

	for _, f := range fields {
		if !identifierPattern.MatchString(f.value) {
			return NewFieldError(f.name, f.value, ErrInvalidField)
		}
	}

	return nil
}

func (g Group) String() string {
	return g.Platform + "/" + g.Arch + "/" + g.Channel
}

// Key uniquely identifies a release inside the store.
type Key struct {
	Group

	// Version is the release version as published.
	Version string
}

func (k Key) String() string {
	return k.Group.String() + "@" + k.Version
}

// Record is a published release. Records are immutable once stored.
type Record struct {
	// Platform is the operating system identifier.
	Platform string
	// Arch is the CPU architecture.
	Arch string
	// Channel is the release track.
	Channel string
	// Version is the semantic version of the release.
	Version string
	// Checksum is the content hash of the artifact.
	Checksum string
	// ArtifactURL points at the artifact; it is never dereferenced by the server.
	ArtifactURL string
	// Signature is an optional detached signature over the artifact.
	Signature string
	// Notes holds optional release notes.
	Notes string
	// PublishedAt is used only to break ties between equal versions.
	PublishedAt time.Time
}

// Group returns the update track the record belongs to.
func (r *Record) Group() Group {
	return Group{
		Platform: r.Platform,
		Arch:     r.Arch,
		Channel:  r.Channel,
	}
}

// Key returns the unique key of the record.
func (r *Record) Key() Key {
	return Key{
		Group:   r.Group(),
		Version: r.Version,
	}
}

// Clone returns a copy of the record to avoid leaking internal references.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}

	cloned := *r

	return &cloned
}

// Query is an inbound update check.
type Query struct {
	Group

	// Current is the version the client runs right now.
	Current Version
}

// NewQuery validates raw query input.
// A malformed current version is reported as ErrInvalidVersion on the
// current_version field and is never defaulted.
func NewQuery(platform, arch, channel, currentVersion string) (*Query, error) {
	current, err := ParseVersion(currentVersion)
	if err != nil {
		return nil, NewFieldError(FieldCurrentVersion, currentVersion, err)
	}

	group, err := NewGroup(platform, arch, channel)
	if err != nil {
		return nil, err
	}

	return &Query{
		Group:   group,
		Current: current,
	}, nil
}

// Decision is the result of a resolution: either no update or exactly one release.
type Decision struct {
	release *Record
}

// NoUpdate returns the decision meaning the client is up to date.
func NoUpdate() Decision {
	return Decision{}
}

// UpdateAvailable returns the decision offering the given release.
func UpdateAvailable(r *Record) Decision {
	return Decision{release: r}
}

// HasUpdate reports whether a release is offered.
func (d Decision) HasUpdate() bool {
	return d.release != nil
}

// Release returns the offered release and true, or nil and false for NoUpdate.
func (d Decision) Release() (*Record, bool) {
	return d.release, d.release != nil
}

func normalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
