// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles bodkin project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dacolabs/bodkin/internal/hub"
	"github.com/dacolabs/bodkin/internal/translate"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the configuration file looked up in the working directory.
const FileName = "bodkin.yaml"

// Defaults applied to fields left empty.
const (
	DefaultTarget   = "rust"
	DefaultLogLevel = "warn"
)

// ErrUnsupportedVersion indicates a config file written for another format version.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Config represents the bodkin.yaml configuration file.
type Config struct {
	Version     int                   `yaml:"version"`
	Target      string                `yaml:"target,omitempty"`
	Package     string                `yaml:"package,omitempty"`
	CacheDir    string                `yaml:"cache_dir,omitempty"`
	HubEndpoint string                `yaml:"hub_endpoint,omitempty"`
	MaxDepth    int                   `yaml:"max_depth,omitempty"`
	OnCollision string                `yaml:"on_collision,omitempty"`
	Datasets    map[string]hub.Coords `yaml:"datasets,omitempty"`
	Log         Log                   `yaml:"log,omitempty"`
}

// Log configures diagnostics written to stderr and, optionally, a Seq server.
type Log struct {
	Level  string `yaml:"level,omitempty"`
	SeqURL string `yaml:"seq_url,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:     CurrentConfigVersion,
		Target:      DefaultTarget,
		HubEndpoint: hub.DefaultEndpoint,
		MaxDepth:    translate.DefaultMaxDepth,
		OnCollision: string(translate.CollisionQualify),
		Log:         Log{Level: DefaultLogLevel},
	}
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

// ApplyDefaults fills empty fields from Default. CacheDir falls back to
// the user cache directory.
func (c *Config) ApplyDefaults() {
	d := Default()
	if c.Target == "" {
		c.Target = d.Target
	}
	if c.HubEndpoint == "" {
		c.HubEndpoint = d.HubEndpoint
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = d.MaxDepth
	}
	if c.OnCollision == "" {
		c.OnCollision = d.OnCollision
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.CacheDir == "" {
		if dir, err := os.UserCacheDir(); err == nil {
			c.CacheDir = filepath.Join(dir, "bodkin")
		} else {
			c.CacheDir = filepath.Join(os.TempDir(), "bodkin-cache")
		}
	}
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return ErrUnsupportedVersion
	}
	if c.MaxDepth < 0 {
		return errors.New("max_depth must not be negative")
	}
	if c.OnCollision != "" {
		if _, err := translate.ParseCollisionPolicy(c.OnCollision); err != nil {
			return err
		}
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	for id, coords := range c.Datasets {
		if err := coords.Validate(); err != nil {
			return fmt.Errorf("dataset %q: %w", id, err)
		}
	}
	return nil
}
