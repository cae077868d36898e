// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package hub resolves known dataset names to files on the Hugging Face Hub
// and downloads them into a local cache.
package hub

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDatasetNotFound indicates the dataset id is absent from the coordinate table.
var ErrDatasetNotFound = errors.New("dataset not found")

// Coords locate one representative Parquet file of a dataset.
type Coords struct {
	Name     string `yaml:"name"`     // canonical dataset repo, e.g. "cifar10"
	Revision string `yaml:"revision"` // git ref, e.g. "refs/convert/parquet"
	File     string `yaml:"file"`     // path inside the repo
}

// Validate checks that all coordinates are set.
func (c Coords) Validate() error {
	switch {
	case c.Name == "":
		return errors.New("dataset name is required")
	case c.Revision == "":
		return errors.New("dataset revision is required")
	case c.File == "":
		return errors.New("dataset file is required")
	}
	return nil
}

// Table is an immutable dataset id to coordinates lookup.
type Table struct {
	entries map[string]Coords
}

var builtin = map[string]Coords{
	"cifar10": {
		Name:     "cifar10",
		Revision: "refs/convert/parquet",
		File:     "plain_text/test/0000.parquet",
	},
}

// DefaultTable returns the built-in coordinates.
func DefaultTable() *Table {
	t, _ := NewTable(nil)
	return t
}

// NewTable returns the built-in coordinates merged with extra. Entries in
// extra override built-ins with the same id. Neither map is retained.
func NewTable(extra map[string]Coords) (*Table, error) {
	entries := make(map[string]Coords, len(builtin)+len(extra))
	for id, c := range builtin {
		entries[id] = c
	}
	for id, c := range extra {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("dataset %q: %w", id, err)
		}
		entries[id] = c
	}
	return &Table{entries: entries}, nil
}

// Lookup returns the coordinates for id.
func (t *Table) Lookup(id string) (Coords, error) {
	c, ok := t.entries[id]
	if !ok {
		return Coords{}, fmt.Errorf("%w: %s", ErrDatasetNotFound, id)
	}
	return c, nil
}

// IDs returns every known dataset id, sorted.
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.entries))
	for id := range t.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
