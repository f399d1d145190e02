// Package common holds helpers shared by several services.
//
// It provides a gRPC client for the release service with call timeouts,
// retries of read calls and admin token propagation, and a helper that
// detects the current system actor (hostname/username) for the audit trail.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
