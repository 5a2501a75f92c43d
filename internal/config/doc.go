// Package config loads, normalizes, and validates manila configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Only the CLI surface is configurable:
// log output, lock directory, and the default transfer mode. The category
// and alias tables are compiled in and deliberately not exposed here, so a
// config file can never desynchronize classification from folder naming.
package config
