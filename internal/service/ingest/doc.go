// Package ingest validates and stores newly published releases and retracts
// withdrawn ones. Every accepted change invalidates cached resolution state of
// the affected group.
package ingest
