package config

import "errors"

// Configuration errors. Callers use errors.Is to tell them apart.
var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidReadConcurrency is returned when the read concurrency is not positive.
	ErrInvalidReadConcurrency = errors.New("invalid read concurrency: must be positive")
)
