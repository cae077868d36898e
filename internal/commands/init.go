// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/bodkin/internal/config"
	"github.com/dacolabs/bodkin/internal/prompts"
	"github.com/dacolabs/bodkin/internal/translate"
)

type initOptions struct {
	target         string
	pkg            string
	onCollision    string
	nonInteractive bool
}

func newInitCmd(translators translate.Register) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a bodkin.yaml in the current directory",
		Long: `Create a bodkin.yaml configuration file in the current directory with
default settings for target, package and collision handling.`,
		Example: `  # Interactive mode
  bodkin init

  # Non-interactive
  bodkin init --target go --package models --non-interactive`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: skipSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.target, "target", "t", config.DefaultTarget, fmt.Sprintf("Default output target (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Default package name")
	cmd.Flags().StringVar(&opts.onCollision, "on-collision", string(translate.CollisionQualify), "Duplicate record name handling (qualify, error or allow)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, translators translate.Register, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfgPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New("bodkin.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive {
		policies := make([]string, len(translate.CollisionPolicies))
		for i, p := range translate.CollisionPolicies {
			policies[i] = string(p)
		}
		if err := prompts.RunInitForm(&opts.target, &opts.pkg, &opts.onCollision, translators.Available(), policies); err != nil {
			return err
		}
	}

	if _, err := translators.Get(opts.target); err != nil {
		return fmt.Errorf("unsupported target %q. Available targets: %s",
			opts.target, strings.Join(translators.Available(), ", "))
	}

	cfg := config.Default()
	cfg.Target = opts.target
	cfg.Package = opts.pkg
	cfg.OnCollision = opts.onCollision

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: config.FileName},
		{Label: "Target", Value: cfg.Target},
		{Label: "Collisions", Value: cfg.OnCollision},
	}, "Initialization completed")
	return nil
}
