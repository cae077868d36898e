// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package rust translates schemas to Rust structs that derive the
// arrow_convert traits.
package rust

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dacolabs/bodkin/internal/schema"
	"github.com/dacolabs/bodkin/internal/translate"
)

// Import is emitted before any struct so the derive macros resolve.
const Import = "use arrow_convert::{ArrowDeserialize, ArrowField, ArrowSerialize};"

// Derives lists the traits every generated struct derives, in order.
var Derives = []string{
	"Debug", "Clone", "PartialEq", "Eq",
	"ArrowField", "ArrowSerialize", "ArrowDeserialize",
}

//go:embed rust.rs.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"derives": func() string { return strings.Join(Derives, ", ") },
}).ParseFS(tmplFS, "rust.rs.tmpl"))

// Translator translates schemas to Rust struct definitions.
type Translator struct{}

// FileExtension returns the file extension for Rust source files.
func (t *Translator) FileExtension() string {
	return ".rs"
}

// Translate converts a schema tree to Rust struct definitions.
func (t *Translator) Translate(root *schema.Root, opts ...translate.Option) ([]byte, error) {
	data, err := translate.Prepare(root, &resolver{}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}

	data.Imports = []string{Import}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "rust.rs.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}
