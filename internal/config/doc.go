// Package config loads, merges, and validates the application configuration.
//
// Values are collected from environment variables, command-line flags, and
// an optional JSON file, merged in priority order, padded with defaults, and
// validated before the server starts.
package config
