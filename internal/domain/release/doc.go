// Package release contains the core domain types for published releases.
//
// It defines Record (an immutable published release), Group and Key (how
// releases are partitioned and identified), Query and Decision (the inbound
// update check and its explicit two-case answer), the semantic Version used
// for ordering, the Resolve decision logic and the ManifestBuilder that turns
// a decision into a client-facing Manifest.
package release
