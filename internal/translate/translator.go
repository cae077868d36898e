// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate turns a file schema tree into ordered record definitions
// and hands them to per-language translators.
package translate

import (
	"fmt"
	"sort"

	"github.com/dacolabs/bodkin/internal/schema"
)

// Translator defines the interface all target-language translators must implement.
type Translator interface {
	// Translate converts a schema tree to source text in the target language.
	Translate(root *schema.Root, opts ...Option) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".rs", ".go").
	FileExtension() string
}

// Register maps a target name to its translator.
type Register map[string]Translator

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown target: %s", name)
	}
	return t, nil
}

// Available returns all registered target names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
