// Package config defines the release server settings and provides helpers to
// load, validate and save them in YAML or TOML format.
//
// Validate fills in defaults for listen addresses, the database backend,
// timeouts and the cache lifetime, so a zero Config is a usable local setup.
package config
