// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles jschema2py project configuration.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// DefaultOutput is the output directory used when none is configured.
const DefaultOutput = "generated"

// Config represents the jschema2py.yaml project configuration file.
type Config struct {
	Version int `yaml:"version"`
	// Schema is the JSON Schema document holding the class definitions.
	Schema string `yaml:"schema"`
	// Hints is an optional code generation hints file.
	Hints string `yaml:"hints,omitempty"`
	// Output is the directory generated modules are written to.
	Output string `yaml:"output,omitempty"`
	// Root, when set, generates the root schema itself as a class of that name.
	Root string `yaml:"root,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Schema == "" {
		return errors.New("schema path is required")
	}
	return nil
}

// OutputDir returns the configured output directory or DefaultOutput.
func (c *Config) OutputDir() string {
	if c.Output == "" {
		return DefaultOutput
	}
	return c.Output
}
