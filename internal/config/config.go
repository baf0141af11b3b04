// Package config loads and saves the sourcemode configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the full sourcemode configuration
type Config struct {
	Surface  SurfaceConfig  `json:"surface"`
	Document DocumentConfig `json:"document"`
	Keys     KeysConfig     `json:"keys"`
}

// SurfaceConfig describes who owns the source editing surface
type SurfaceConfig struct {
	// ExternallyManaged is true when the host supplies its own source
	// editing surface. The controller then only flips the mode flag
	// and notifies observers, leaving presentation to the host.
	ExternallyManaged bool `json:"externallyManaged"`
}

// DocumentConfig describes the initial document regions
type DocumentConfig struct {
	Regions []RegionConfig `json:"regions"`
}

// RegionConfig is a named region with its initial serialized content
type RegionConfig struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// KeysConfig contains the keybindings
type KeysConfig struct {
	ToggleSource string `json:"toggleSource"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Surface: SurfaceConfig{},
		Document: DocumentConfig{
			Regions: []RegionConfig{
				{Name: "main", Content: "<p>Hello</p>"},
			},
		},
		Keys: KeysConfig{
			ToggleSource: "ctrl+e",
		},
	}
}

// LoadConfig loads configuration from .sourcemode.json in the given
// directory, falling back to defaults when no file exists
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".sourcemode.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return MergeWithDefaults(&cfg), nil
}

// SaveConfig saves configuration to the specified path
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Document.Regions == nil {
		cfg.Document.Regions = defaults.Document.Regions
	}
	if cfg.Keys.ToggleSource == "" {
		cfg.Keys.ToggleSource = defaults.Keys.ToggleSource
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
