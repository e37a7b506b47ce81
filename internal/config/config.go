// Package config loads the optional kokbok.yml application configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = "kokbok.yml"

// Config holds application settings
type Config struct {
	// CookbookPath is the cookbook file commands operate on by default
	CookbookPath string `yaml:"cookbook_path"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// KeyringPath points at an armored public key file used by verify
	KeyringPath string `yaml:"keyring_path"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		CookbookPath: "kokbok.txt",
		LogLevel:     "info",
	}
}

// Load reads the YAML config at path. A missing file is not an error: the
// defaults are returned so the tool works with zero setup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.CookbookPath == "" {
		return nil, fmt.Errorf("config %s: cookbook_path must not be empty", path)
	}

	return cfg, nil
}
