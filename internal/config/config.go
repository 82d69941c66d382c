// Package config provides configuration loading for the CLI and server.
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
	// Paths
	Document string `json:"document,omitempty"` // Path to resume document JSON file
	Settings string `json:"settings,omitempty"` // Path to settings override JSON file
	Output   string `json:"output,omitempty"`   // Path to output file

	// Rendering
	Template string `json:"template,omitempty"` // Template id (classic, sidebar, trio)
	Format   string `json:"format,omitempty"`   // Output format: tree, html, pdf

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed composition information
	PDFTimeout  int    `json:"pdf_timeout,omitempty"`  // Headless Chrome timeout in seconds
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
	switch c.Format {
	case "", "tree", "html", "pdf":
	default:
		return fmt.Errorf("config error: unknown format %q (expected tree, html, or pdf)", c.Format)
	}

	if c.PDFTimeout < 0 {
		return fmt.Errorf("config error: 'pdf_timeout' must be non-negative")
	}

	if c.Document != "" {
		if _, err := os.Stat(c.Document); os.IsNotExist(err) {
			return fmt.Errorf("config error: document file not found: %s", c.Document)
		}
	}
	if c.Settings != "" {
		if _, err := os.Stat(c.Settings); os.IsNotExist(err) {
			return fmt.Errorf("config error: settings file not found: %s", c.Settings)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Document == "" {
		result.Document = defaults.Document
	}
	if result.Settings == "" {
		result.Settings = defaults.Settings
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.PDFTimeout == 0 {
		result.PDFTimeout = defaults.PDFTimeout
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
