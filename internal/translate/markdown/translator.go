// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown renders schemas as markdown reference documentation.
package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/dacolabs/bodkin/internal/schema"
	"github.com/dacolabs/bodkin/internal/translate"
)

//go:embed markdown.md.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "markdown.md.tmpl"))

// Translator translates schemas to markdown documentation.
type Translator struct{}

// FileExtension returns the file extension for markdown files.
func (t *Translator) FileExtension() string {
	return ".md"
}

// Translate converts a schema tree to one markdown table per record.
func (t *Translator) Translate(root *schema.Root, opts ...translate.Option) ([]byte, error) {
	data, err := translate.Prepare(root, &resolver{}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}

	data.Extra["Columns"] = countColumns(root.Group)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.md.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

// countColumns returns the number of leaf columns below g.
func countColumns(g *schema.Group) int {
	n := 0
	for _, f := range g.Fields {
		switch v := f.(type) {
		case *schema.Group:
			n += countColumns(v)
		case *schema.Scalar:
			n++
		}
	}
	return n
}
