package release

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewGroup_Normalizes verifies identifiers are lower-cased and trimmed.
func TestNewGroup_Normalizes(t *testing.T) {
	t.Parallel()

	g, err := NewGroup(" Linux", "X64", "Stable ")
	require.NoError(t, err)
	require.Equal(t, Group{Platform: "linux", Arch: "x64", Channel: "stable"}, g)
	require.Equal(t, "linux/x64/stable", g.String())
}

// TestNewGroup_ReportsField checks that the failing field is identified.
func TestNewGroup_ReportsField(t *testing.T) {
	t.Parallel()

	cases := map[string][3]string{
		FieldPlatform: {"", "x64", "stable"},
		FieldArch:     {"linux", "x 64", "stable"},
		FieldChannel:  {"linux", "x64", "../stable"},
	}

	for field, in := range cases {
		_, err := NewGroup(in[0], in[1], in[2])
		require.ErrorIs(t, err, ErrInvalidField)

		var fieldErr *FieldError
		require.True(t, errors.As(err, &fieldErr))
		require.Equal(t, field, fieldErr.Field)
	}
}

// TestNewQuery_InvalidVersion ensures a malformed current version fails fast.
func TestNewQuery_InvalidVersion(t *testing.T) {
	t.Parallel()

	q, err := NewQuery("linux", "x64", "stable", "not-a-version")
	require.Nil(t, q)
	require.ErrorIs(t, err, ErrInvalidVersion)

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	require.Equal(t, FieldCurrentVersion, fieldErr.Field)
}

// TestDecision_TwoCases verifies NoUpdate is distinct from any offered release.
func TestDecision_TwoCases(t *testing.T) {
	t.Parallel()

	none := NoUpdate()
	require.False(t, none.HasUpdate())

	r, ok := none.Release()
	require.False(t, ok)
	require.Nil(t, r)

	zero := &Record{Version: "0.0.0"}
	some := UpdateAvailable(zero)
	require.True(t, some.HasUpdate())

	r, ok = some.Release()
	require.True(t, ok)
	require.Same(t, zero, r)
}

// TestRecordClone verifies Clone copies and handles nil safely.
func TestRecordClone(t *testing.T) {
	t.Parallel()

	require.Nil(t, (*Record)(nil).Clone())

	r := &Record{Platform: "linux", Arch: "x64", Channel: "stable", Version: "1.0.0"}
	c := r.Clone()

	require.Equal(t, r, c)
	require.NotSame(t, r, c)
	require.Equal(t, "linux/x64/stable@1.0.0", c.Key().String())
}
