// Package version exposes build metadata of the release binaries.
//
// Version, Commit and BuildTime may be injected with -ldflags. Commit and
// BuildTime fall back to the VCS stamp Go embeds in the binary.
package version
