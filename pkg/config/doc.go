// Package config handles configuration management for stampstore.
// It layers embedded TOML defaults, an optional user TOML file and
// STAMPSTORE_* environment variables, in that order.
package config
