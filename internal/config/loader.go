package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the configuration file name looked up in the
	// current and home directories.
	DefaultConfigFile = ".sortn"

	// XDGConfigFile is the configuration file name inside XDGConfigDir.
	XDGConfigFile = "config.yaml"
)

// File is the structure of the YAML configuration file. Each key gives the
// default value of the flag with the same name.
type File struct {
	Reverse        bool `yaml:"reverse,omitempty"`
	IgnoreCase     bool `yaml:"ignore_case,omitempty"`
	Randomize      bool `yaml:"randomize,omitempty"`
	SkipBlankLines bool `yaml:"skip_blank_lines,omitempty"`
	Unique         bool `yaml:"unique,omitempty"`
}

// Apply copies the file's flag values onto cfg.
// Command-line flags are applied afterwards and take precedence.
func (f *File) Apply(cfg *Config) {
	cfg.Reverse = f.Reverse
	cfg.IgnoreCase = f.IgnoreCase
	cfg.Randomize = f.Randomize
	cfg.SkipBlankLines = f.SkipBlankLines
	cfg.Unique = f.Unique
}

// LoadConfigFile loads flag defaults from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &f, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. configPath, if it is not empty
//  2. .sortn in the current directory
//  3. config.yaml in the XDG config directory
//  4. .sortn in the user's home directory
//
// It returns the path of the first file that exists, or "" if none does.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), XDGConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
