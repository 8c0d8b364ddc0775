// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Parsing
	StrictValidation    bool    `json:"strict_validation,omitempty"`    // Treat field errors as fatal
	IncludeRawText      bool    `json:"include_raw_text,omitempty"`     // Attach extracted raw text to results
	ConfidenceThreshold float64 `json:"confidence_threshold,omitempty"` // Minimum confidence for success (0.0-1.0)

	// Section classification overrides: heading text -> section type
	SectionMapping map[string]string `json:"section_mapping,omitempty"`

	// Server
	Port        int    `json:"port,omitempty"`         // HTTP server port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed parse information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("config error: 'confidence_threshold' must be between 0.0 and 1.0")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ConfidenceThreshold == 0 {
		result.ConfidenceThreshold = defaults.ConfidenceThreshold
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SectionMapping == nil {
		result.SectionMapping = defaults.SectionMapping
	}

	// Bool fields: true wins, since false is the zero value
	result.StrictValidation = result.StrictValidation || defaults.StrictValidation
	result.IncludeRawText = result.IncludeRawText || defaults.IncludeRawText
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
