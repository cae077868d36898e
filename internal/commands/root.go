// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/dacolabs/bodkin/internal/session"
	"github.com/dacolabs/bodkin/internal/translate"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register, getenv func(string) string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "bodkin",
		Short: "Generate typed record definitions from Parquet schemas",
		Long: `bodkin reads the schema of a Parquet file, either local or fetched from
the Hugging Face Hub, and generates typed record definitions for it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: session.PreRunLoad(func(cmd *cobra.Command) session.Options {
			return session.Options{
				ConfigPath: opts.configPath,
				Verbose:    opts.verbose,
				Getenv:     getenv,
				Stderr:     cmd.ErrOrStderr(),
			}
		}),
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default ./bodkin.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(
		newGenerateCmd(translators),
		newDatasetsCmd(),
		newInitCmd(translators),
		newVersionCmd(),
	)

	return rootCmd
}

// skipSession overrides the root PersistentPreRunE for commands that must
// work without a loadable config.
func skipSession(*cobra.Command, []string) error { return nil }
