// Package config provides configuration loading for embedding
// documentation projects.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/docweave/xreftrack/tracker"
)

// ProjectConfigFile is the name of the project-level config file,
// expected next to the host's own configuration file.
const ProjectConfigFile = "xreftrack.yaml"

// Config represents the complete project configuration.
type Config struct {
	MissingReferences tracker.Options `yaml:"missing_references"`
}

// Default returns a Config with tracker defaults.
func Default() *Config {
	return &Config{
		MissingReferences: tracker.DefaultOptions(),
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := c.MissingReferences.Validate(); err != nil {
		return fmt.Errorf("missing_references: %w", err)
	}
	return nil
}

// Load reads configuration from a YAML file. Options absent from the
// file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFromDir loads xreftrack.yaml from the host's configuration
// directory. An absent file yields the defaults.
func LoadFromDir(confDir string) (*Config, error) {
	path := filepath.Join(confDir, ProjectConfigFile)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}
