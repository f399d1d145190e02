// Package release implements the gRPC transport of the release server.
//
// It adapts domain types to release.v1 messages, maps domain errors to gRPC
// status codes and guards admin methods with a bearer token interceptor.
package release
