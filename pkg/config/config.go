// Package config loads the idreg CLI configuration file. The library
// packages take explicit parameters; only the command-line surface reads
// configuration from disk.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
)

// DefaultStorePath is the store file used when neither the config file nor
// the --store flag names one.
const DefaultStorePath = "idreg.json"

// Config holds the CLI configuration.
type Config struct {
	// StorePath is the JSON file backing the identifier store.
	StorePath string `yaml:"store_path"`

	// Cache wraps the store in the in-memory caching decorator.
	Cache bool `yaml:"cache"`

	// Validators maps identifier types to named validators
	// (isbn10, isbn13, orcid).
	Validators map[string]string `yaml:"validators"`

	// Log configures CLI logging.
	Log LogConfig `yaml:"log"`
}

// LogConfig configures CLI logging.
type LogConfig struct {
	// Level is the minimum level to output: debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is the output format: text or json.
	Format string `yaml:"format"`
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		StorePath: DefaultStorePath,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a Config from a YAML file. Fields absent from the file keep
// their defaults. Returns wrapped errors for common failure cases.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if cfg.StorePath == "" {
		cfg.StorePath = DefaultStorePath
	}
	return cfg, nil
}
