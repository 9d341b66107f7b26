package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "sortn"

	// DefaultReadConcurrency is the number of input files read at the same
	// time when several files are given on the command line.
	DefaultReadConcurrency = 4
)

// Config holds all options for a sortn run.
type Config struct {
	// Reverse inverts the natural order. Ignored when Randomize is set.
	Reverse bool

	// IgnoreCase compares lower-cased comparison keys, both when ordering
	// and when testing for duplicates.
	IgnoreCase bool

	// Randomize shuffles the lines instead of sorting them.
	Randomize bool

	// SkipBlankLines drops lines that are empty or whitespace only.
	SkipBlankLines bool

	// Unique keeps only the first line of each comparison key, in output order.
	Unique bool

	// Verbose enables debug logging on stderr.
	Verbose bool

	// ConfigFilePath is an explicit configuration file path.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// Inputs lists the files to read. Empty means standard input.
	Inputs []string

	// OutputFile is the path the result is written to. Empty means stdout.
	OutputFile string

	// ReadConcurrency limits how many inputs are read at the same time.
	ReadConcurrency int
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		ReadConcurrency: DefaultReadConcurrency,
	}
}

// Validate checks the ambient options. The ordering flags never conflict
// with each other, so only values outside their domain are rejected.
func (c *Config) Validate() error {
	if c.ReadConcurrency <= 0 {
		return ErrInvalidReadConcurrency
	}
	return nil
}

// XDGConfigDir returns the XDG config directory for sortn.
// On Linux: ~/.config/sortn
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
