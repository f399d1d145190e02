package ingest

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/oshokin/release-server/internal/config"
	domain "github.com/oshokin/release-server/internal/domain/release"
)

// Policy holds the acceptance rules applied to every ingested release.
type Policy struct {
	// RequireSignature rejects releases without a signature.
	RequireSignature bool
	// AllowBackfill permits versions lower than the latest of the group.
	AllowBackfill bool

	platforms allowList
	archs     allowList
	channels  allowList
}

// NewPolicy compiles the configured policy.
func NewPolicy(cfg *config.Policy) (*Policy, error) {
	if cfg == nil {
		return &Policy{AllowBackfill: true}, nil
	}

	p := &Policy{
		RequireSignature: cfg.RequireSignature,
		AllowBackfill:    cfg.BackfillAllowed(),
	}

	var err error

	if p.platforms, err = compileAllowList(cfg.AllowedPlatforms); err != nil {
		return nil, err
	}

	if p.archs, err = compileAllowList(cfg.AllowedArchs); err != nil {
		return nil, err
	}

	if p.channels, err = compileAllowList(cfg.AllowedChannels); err != nil {
		return nil, err
	}

	return p, nil
}

// admits checks group against the allow-lists.
func (p *Policy) admits(group domain.Group) error {
	checks := [...]struct {
		field string
		value string
		list  allowList
	}{
		{domain.FieldPlatform, group.Platform, p.platforms},
		{domain.FieldArch, group.Arch, p.archs},
		{domain.FieldChannel, group.Channel, p.channels},
	}

	for _, c := range checks {
		if !c.list.match(c.value) {
			return domain.NewFieldError(c.field, c.value, fmt.Errorf("%w: not in allow-list", domain.ErrInvalidField))
		}
	}

	return nil
}

// allowList matches identifiers against glob patterns. An empty list admits everything.
type allowList []glob.Glob

func compileAllowList(patterns []string) (allowList, error) {
	list := make(allowList, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
		}

		list = append(list, g)
	}

	return list, nil
}

func (l allowList) match(value string) bool {
	if len(l) == 0 {
		return true
	}

	for _, g := range l {
		if g.Match(value) {
			return true
		}
	}

	return false
}
