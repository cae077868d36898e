// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dacolabs/bodkin/internal/session"
)

func newDatasetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List known datasets",
		Long: `List the datasets that --from-hf accepts, with the Hub repository,
revision and file each one resolves to. Entries come from the built-in
table and the datasets section of bodkin.yaml.`,
		Example: `  # List known datasets
  bodkin datasets`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runDatasets(cmd, s)
		},
	}
	return cmd
}

func runDatasets(cmd *cobra.Command, s *session.Context) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))).
		Headers("ID", "REPOSITORY", "REVISION", "FILE")

	for _, id := range s.Datasets.IDs() {
		c, err := s.Datasets.Lookup(id)
		if err != nil {
			return err
		}
		t.Row(id, c.Name, c.Revision, c.File)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return err
}
