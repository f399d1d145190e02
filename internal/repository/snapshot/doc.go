// Package snapshot persists release snapshots as JSON files.
//
// A snapshot holds every published release in the wire form of the gRPC API,
// so exports stay readable by any ReleaseService client. Snapshots are used to
// back up a store and to move releases between database drivers.
package snapshot
