package release

import (
	"time"

	domain "github.com/oshokin/release-server/internal/domain/release"
)

// releasePayload is the body of POST /v1/releases.
type releasePayload struct {
	Platform    string     `json:"platform"`
	Arch        string     `json:"arch"`
	Channel     string     `json:"channel"`
	Version     string     `json:"version"`
	Checksum    string     `json:"checksum"`
	ArtifactURL string     `json:"artifact_url"`
	Signature   string     `json:"signature,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

func (p *releasePayload) toRecord() *domain.Record {
	record := &domain.Record{
		Platform:    p.Platform,
		Arch:        p.Arch,
		Channel:     p.Channel,
		Version:     p.Version,
		Checksum:    p.Checksum,
		ArtifactURL: p.ArtifactURL,
		Signature:   p.Signature,
		Notes:       p.Notes,
	}

	if p.PublishedAt != nil {
		record.PublishedAt = *p.PublishedAt
	}

	return record
}

// releaseView is the public form of a stored release.
type releaseView struct {
	Platform    string    `json:"platform"`
	Arch        string    `json:"arch"`
	Channel     string    `json:"channel"`
	Version     string    `json:"version"`
	Checksum    string    `json:"checksum"`
	ArtifactURL string    `json:"artifact_url"`
	Signature   string    `json:"signature,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

func toReleaseView(r *domain.Record) releaseView {
	return releaseView{
		Platform:    r.Platform,
		Arch:        r.Arch,
		Channel:     r.Channel,
		Version:     r.Version,
		Checksum:    r.Checksum,
		ArtifactURL: r.ArtifactURL,
		Signature:   r.Signature,
		Notes:       r.Notes,
		PublishedAt: r.PublishedAt.UTC(),
	}
}

// releaseList is the body of GET /v1/releases.
type releaseList struct {
	Releases []releaseView `json:"releases"`
}

// errorBody is the body of every error response.
type errorBody struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}
