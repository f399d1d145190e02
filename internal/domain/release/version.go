package release

import (
	"fmt"
	"math"
	"strings"

	"github.com/blang/semver"
)

const (
	// MaxVersionLength bounds a stored version including build metadata.
	MaxVersionLength = 192
	// MaxPrecedenceKeyLength bounds a stored version without build metadata.
	MaxPrecedenceKeyLength = 128
)

// Version is a parsed semantic version.
// Ordering follows semantic version precedence: major, minor and patch are
// compared numerically, a pre-release sorts before the same release without
// one, and build metadata never takes part in the comparison.
type Version struct {
	v semver.Version
}

// ParseVersion strictly parses s as a semantic version.
// Leading "v" prefixes and partial versions such as "1.2" are rejected, and so
// are numeric components that do not fit a signed 64-bit column.
func ParseVersion(s string) (Version, error) {
	parsed, err := semver.Parse(strings.TrimSpace(s))
	if err != nil {
		return Version{}, fmt.Errorf("%w: %w", ErrInvalidVersion, err)
	}

	for _, component := range []uint64{parsed.Major, parsed.Minor, parsed.Patch} {
		if component > math.MaxInt64 {
			return Version{}, fmt.Errorf("%w: component %d exceeds %d", ErrInvalidVersion, component, int64(math.MaxInt64))
		}
	}

	return Version{v: parsed}, nil
}

// MustParseVersion is like ParseVersion but panics on malformed input.
// It is meant for constants and tests.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}

	return v
}

// Compare returns -1, 0 or 1 when v sorts before, equal to or after o.
func (v Version) Compare(o Version) int {
	return v.v.Compare(o.v)
}

// GreaterThan reports whether v has strictly higher precedence than o.
func (v Version) GreaterThan(o Version) bool {
	return v.Compare(o) > 0
}

// Major returns the major component.
func (v Version) Major() uint64 { return v.v.Major }

// Minor returns the minor component.
func (v Version) Minor() uint64 { return v.v.Minor }

// Patch returns the patch component.
func (v Version) Patch() uint64 { return v.v.Patch }

// IsPrerelease reports whether the version carries a pre-release tag.
func (v Version) IsPrerelease() bool {
	return len(v.v.Pre) > 0
}

// String returns the canonical form including build metadata.
func (v Version) String() string {
	return v.v.String()
}

// PrecedenceKey returns the canonical form without build metadata.
// Two versions with equal precedence always share the same key, which makes
// it suitable for uniqueness constraints.
func (v Version) PrecedenceKey() string {
	stripped := v.v
	stripped.Build = nil

	return stripped.String()
}
