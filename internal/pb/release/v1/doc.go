// Package releasev1 holds the generated protobuf messages and gRPC bindings
// of release.v1.ReleaseService, plus the metadata keys both sides agree on.
//
// Regenerate from the repository root after editing proto/release/v1/release.proto:
//
//	buf generate
package releasev1
