// Package update implements the read path of the release server.
//
// Service loads the candidate set of a group from the store (or the latest
// candidate from an optional cache), runs the version resolver and shapes the
// decision into a manifest. It never mutates state.
package update
