// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/bodkin/internal/parquetfile"
	"github.com/dacolabs/bodkin/internal/prompts"
	"github.com/dacolabs/bodkin/internal/session"
	"github.com/dacolabs/bodkin/internal/translate"
	"github.com/dacolabs/bodkin/internal/watch"
)

type generateOptions struct {
	fromFile       string
	fromHF         string
	target         string
	output         string
	pkg            string
	onCollision    string
	maxDepth       int
	watch          bool
	nonInteractive bool
}

func newGenerateCmd(translators translate.Register) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate record definitions from a Parquet schema",
		Long: fmt.Sprintf(`Generate record definitions from the schema of a Parquet file.

The schema comes from a local file (--from-file) or from a known dataset
fetched from the Hugging Face Hub (--from-hf). Nested groups become their
own records, emitted before the records that use them.

Available targets: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Print Rust structs for a local file
  bodkin generate --from-file data.parquet

  # Generate Go structs for a hub dataset into a file
  bodkin generate --from-hf cifar10 --target go --output models/cifar10.go

  # Regenerate JSON Schema whenever the file changes
  bodkin generate --from-file data.parquet --target jsonschema --output data.schema.json --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.fromFile, "from-file", "f", "", "Path to a local Parquet file")
	cmd.Flags().StringVar(&opts.fromHF, "from-hf", "", "Known dataset id to fetch from the Hugging Face Hub")
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", fmt.Sprintf("Output target (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Package name for targets that emit one")
	cmd.Flags().StringVar(&opts.onCollision, "on-collision", "", "Duplicate record name handling (qualify, error or allow)")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "Maximum group nesting depth")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Regenerate when the input file changes (requires --from-file and --output)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	cmd.MarkFlagsMutuallyExclusive("from-file", "from-hf")

	return cmd
}

func runGenerate(cmd *cobra.Command, translators translate.Register, opts *generateOptions) error {
	s, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("target") {
		opts.target = s.Config.Target
	}
	if !cmd.Flags().Changed("package") {
		opts.pkg = s.Config.Package
	}
	if !cmd.Flags().Changed("on-collision") {
		opts.onCollision = s.Config.OnCollision
	}
	if !cmd.Flags().Changed("max-depth") {
		opts.maxDepth = s.Config.MaxDepth
	}

	if opts.fromFile == "" && opts.fromHF == "" {
		if opts.nonInteractive {
			return errors.New("one of --from-file or --from-hf is required")
		}
		kind := prompts.SourceFile
		if err := prompts.RunSourceForm(
			&kind, &opts.fromFile, &opts.fromHF, &opts.target,
			s.Datasets.IDs(), translators.Available(),
			!cmd.Flags().Changed("target"),
		); err != nil {
			return err
		}
		if kind == prompts.SourceFile {
			opts.fromHF = ""
		} else {
			opts.fromFile = ""
		}
	}

	if opts.watch && (opts.fromFile == "" || opts.output == "") {
		return errors.New("--watch requires --from-file and --output")
	}
	if opts.maxDepth < 0 {
		return errors.New("--max-depth must not be negative")
	}

	translator, err := translators.Get(opts.target)
	if err != nil {
		return fmt.Errorf("unsupported target %q. Available targets: %s",
			opts.target, strings.Join(translators.Available(), ", "))
	}

	policy, err := translate.ParseCollisionPolicy(opts.onCollision)
	if err != nil {
		return err
	}

	g := &generator{
		session:    s,
		translator: translator,
		opts:       opts,
		translateOpts: []translate.Option{
			translate.WithMaxDepth(opts.maxDepth),
			translate.WithCollisionPolicy(policy),
			translate.WithPackage(opts.pkg),
		},
	}

	if err := g.run(cmd); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	w, err := watch.New(opts.fromFile)
	if err != nil {
		return err
	}
	w.Logger = s.Logger
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "\nWatching %s for changes (Ctrl-C to stop)\n", w.Path())
	return w.Run(cmd.Context(), func(context.Context) error {
		return g.run(cmd)
	})
}

type generator struct {
	session       *session.Context
	translator    translate.Translator
	opts          *generateOptions
	translateOpts []translate.Option
}

// run reads the schema, renders it and writes the result. Nothing is
// written when any column fails to map.
func (g *generator) run(cmd *cobra.Command) error {
	log := g.session.Logger

	source := g.opts.fromFile
	if g.opts.fromHF != "" {
		local, coords, err := g.session.Hub.Fetch(cmd.Context(), g.opts.fromHF)
		if err != nil {
			return err
		}
		log.Info("dataset resolved", "dataset", g.opts.fromHF, "repo", coords.Name, "path", local)
		source = local
	}

	root, err := parquetfile.Open(source)
	if err != nil {
		return err
	}
	log.Debug("schema read", "source", source, "root", root.Name, "fields", len(root.Group.Fields))

	data, err := g.translator.Translate(root, g.translateOpts...)
	if err != nil {
		return err
	}

	if g.opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if dir := filepath.Dir(g.opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(g.opts.output, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", g.opts.output, err)
	}
	log.Info("output written", "path", g.opts.output, "bytes", len(data))

	sourceLabel := g.opts.fromFile
	if g.opts.fromHF != "" {
		sourceLabel = "hf:" + g.opts.fromHF
	}
	prompts.PrintResult(cmd.ErrOrStderr(), []prompts.ResultField{
		{Label: "Source", Value: sourceLabel},
		{Label: "Schema", Value: root.Name},
		{Label: "Target", Value: g.opts.target},
		{Label: "Output", Value: g.opts.output},
	}, "")
	return nil
}
