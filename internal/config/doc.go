// Package config loads the optional configuration file passed with --config.
//
// The file may be YAML (.yaml, .yml) or TOML (.toml). Decoding is strict:
// unknown keys are rejected so that typos do not silently fall back to the
// defaults.
package config
