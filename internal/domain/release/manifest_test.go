package release

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestManifestBuilder_Build copies only client-facing fields.
func TestManifestBuilder_Build(t *testing.T) {
	t.Parallel()

	r := newRecord("1.3.0")
	r.Notes = "Bug fixes"

	m, err := NewManifestBuilder(Policy{}).Build(r)
	require.NoError(t, err)
	require.Equal(t, "1.3.0", m.Version)
	require.Equal(t, r.ArtifactURL, m.ArtifactURL)
	require.Equal(t, "abc", m.Checksum)
	require.Empty(t, m.Signature)
	require.Equal(t, "Bug fixes", m.Notes)
}

// TestManifestBuilder_RequireSignature withholds unsigned manifests when signatures are required.
func TestManifestBuilder_RequireSignature(t *testing.T) {
	t.Parallel()

	builder := NewManifestBuilder(Policy{RequireSignature: true})

	_, err := builder.Build(newRecord("1.3.0"))
	require.ErrorIs(t, err, ErrIntegrityPolicyViolation)

	signed := newRecord("1.3.0")
	signed.Signature = "sig123"

	m, err := builder.Build(signed)
	require.NoError(t, err)
	require.Equal(t, "sig123", m.Signature)

	_, err = builder.Build(nil)
	require.ErrorIs(t, err, ErrStoreIntegrityFault)
}

// TestManifest_Digest ensures the digest is stable and content-sensitive.
func TestManifest_Digest(t *testing.T) {
	t.Parallel()

	builder := NewManifestBuilder(Policy{})

	a, err := builder.Build(newRecord("1.3.0"))
	require.NoError(t, err)

	b, err := builder.Build(newRecord("1.3.0"))
	require.NoError(t, err)

	da, err := a.Digest()
	require.NoError(t, err)
	require.NoError(t, da.Validate())

	db, err := b.Digest()
	require.NoError(t, err)
	require.Equal(t, da, db)

	b.Notes = "changed"
	db, err = b.Digest()
	require.NoError(t, err)
	require.NotEqual(t, da, db)
}
