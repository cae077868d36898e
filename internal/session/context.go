// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides run context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dacolabs/bodkin/internal/config"
	"github.com/dacolabs/bodkin/internal/hub"
	"github.com/dacolabs/bodkin/internal/logging"
)

var (
	// ErrConfigNotFound indicates an explicitly requested config file doesn't exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Options controls how Load resolves the run context.
type Options struct {
	// ConfigPath is an explicit config file. When empty, bodkin.yaml in the
	// working directory is used if present.
	ConfigPath string

	// Verbose forces debug logging.
	Verbose bool

	// Getenv looks up environment variables (HF_TOKEN).
	Getenv func(string) string

	// Stderr receives log output.
	Stderr io.Writer
}

// Context holds the resolved configuration and the services built from it.
type Context struct {
	// Config has defaults applied.
	Config *config.Config

	// ConfigPath is the file Config was read from, empty when defaults are used.
	ConfigPath string

	RunID  string
	Logger *slog.Logger

	// Datasets is the coordinate table, built-ins merged with config entries.
	Datasets *hub.Table

	// Hub downloads datasets into Config.CacheDir.
	Hub *hub.Client

	cleanup func()
}

// Load resolves the run context and returns a new context.Context with it stored.
func Load(ctx context.Context, opts Options) (context.Context, error) {
	cfg, path, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()

	if opts.Verbose {
		cfg.Log.Level = "debug"
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	runID := uuid.NewString()
	logger, cleanup, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		SeqURL: cfg.Log.SeqURL,
		Writer: stderr,
		RunID:  runID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	table, err := hub.NewTable(cfg.Datasets)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	client := hub.NewClient(table, cfg.CacheDir)
	client.Endpoint = cfg.HubEndpoint
	client.Logger = logger
	if opts.Getenv != nil {
		client.Token = opts.Getenv("HF_TOKEN")
	}

	logger.Debug("session loaded", "config", path, "target", cfg.Target, "cache_dir", cfg.CacheDir)

	return context.WithValue(ctx, contextKey{}, &Context{
		Config:     cfg,
		ConfigPath: path,
		RunID:      runID,
		Logger:     logger,
		Datasets:   table,
		Hub:        client,
		cleanup:    cleanup,
	}), nil
}

// loadConfig reads an explicit path, or bodkin.yaml in the working directory
// if it exists, or falls back to defaults.
func loadConfig(explicit string) (*config.Config, string, error) {
	path := explicit
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, config.FileName)
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			return config.Default(), "", nil
		}
	} else if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		return nil, "", fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}
	return cfg, path, nil
}

// Close flushes remote log sinks. It is safe to call more than once.
func (c *Context) Close() {
	if c == nil || c.cleanup == nil {
		return
	}
	c.cleanup()
	c.cleanup = nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if ctx == nil {
		return nil
	}
	if s, ok := ctx.Value(contextKey{}).(*Context); ok {
		return s
	}
	return nil
}
