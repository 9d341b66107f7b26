// Package config provides the run configuration for sortn.
//
// A Config is resolved once, before any input is read: defaults from
// NewConfig, then values from an optional YAML configuration file, then
// command-line flags. After resolution the Config is treated as immutable.
//
// The five ordering flags (Reverse, IgnoreCase, Randomize, SkipBlankLines,
// Unique) are independent; every combination is legal.
package config
