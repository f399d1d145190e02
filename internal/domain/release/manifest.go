package release

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	"github.com/opencontainers/go-digest"

	// Register SHA-256 for digest.Canonical.
	_ "crypto/sha256"
)

// Manifest is the client-facing description of an available update.
// It never carries internal identifiers or other candidates.
type Manifest struct {
	// Version is the version the client should move to.
	Version string `json:"version"`
	// ArtifactURL is where the client downloads the artifact from.
	ArtifactURL string `json:"artifact_url"`
	// Checksum is the content hash the client verifies the artifact against.
	Checksum string `json:"checksum"`
	// Signature is the detached artifact signature, when one was published.
	Signature string `json:"signature,omitempty"`
	// Notes are the release notes, when present.
	Notes string `json:"notes,omitempty"`
	// PublishedAt is when the release was published.
	PublishedAt time.Time `json:"published_at"`
}

// Digest returns a digest of the manifest's canonical JSON form (RFC 8785).
// Equal manifests always produce equal digests regardless of field order.
func (m *Manifest) Digest() (digest.Digest, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}

	canonical, err := jsoncanonicalizer.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("canonicalize manifest: %w", err)
	}

	return digest.FromBytes(canonical), nil
}

// Policy holds the integrity requirements of a deployment.
type Policy struct {
	// RequireSignature withholds manifests for releases without a signature.
	RequireSignature bool
}

// ManifestBuilder shapes a release into a Manifest according to a Policy.
type ManifestBuilder struct {
	policy Policy
}

// NewManifestBuilder creates a builder enforcing the given policy.
func NewManifestBuilder(policy Policy) *ManifestBuilder {
	return &ManifestBuilder{
		policy: policy,
	}
}

// Build produces the manifest for r.
// It fails with ErrIntegrityPolicyViolation instead of serving an unsigned
// manifest when signatures are required.
func (b *ManifestBuilder) Build(r *Record) (*Manifest, error) {
	if r == nil {
		return nil, fmt.Errorf("build manifest: %w", ErrStoreIntegrityFault)
	}

	signature := strings.TrimSpace(r.Signature)
	if b.policy.RequireSignature && signature == "" {
		return nil, fmt.Errorf("release %s has no signature: %w", r.Key(), ErrIntegrityPolicyViolation)
	}

	return &Manifest{
		Version:     r.Version,
		ArtifactURL: r.ArtifactURL,
		Checksum:    r.Checksum,
		Signature:   signature,
		Notes:       r.Notes,
		PublishedAt: r.PublishedAt.UTC(),
	}, nil
}
