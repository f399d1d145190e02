// Package publisher implements the release-publisher workflows.
//
// Publish computes the artifact digest locally, optionally attaches a
// detached signature and release notes, and registers the release with a
// running release-server over gRPC. Retract withdraws a release and Check
// asks the server what a client on a given version would be offered.
package publisher
