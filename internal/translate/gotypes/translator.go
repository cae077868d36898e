// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package gotypes translates schemas to Go structs tagged for parquet-go.
package gotypes

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"sort"
	"text/template"

	"github.com/dacolabs/bodkin/internal/schema"
	"github.com/dacolabs/bodkin/internal/translate"
)

// DefaultPackage is used when no package name is requested.
const DefaultPackage = "models"

//go:embed gotypes.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "gotypes.go.tmpl"))

// Translator translates schemas to Go struct type definitions.
type Translator struct{}

// FileExtension returns the file extension for Go source files.
func (t *Translator) FileExtension() string {
	return ".go"
}

// Translate converts a schema tree to gofmt-formatted Go struct definitions.
func (t *Translator) Translate(root *schema.Root, opts ...translate.Option) ([]byte, error) {
	data, err := translate.Prepare(root, &resolver{}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}

	if data.Package == "" {
		data.Package = DefaultPackage
	}

	imports := make(map[string]struct{})
	for i := range data.Records {
		translate.DedupeFieldNames(data.Records[i].Fields)
		for _, f := range data.Records[i].Fields {
			if path, ok := typeImports[f.Type]; ok {
				imports[path] = struct{}{}
			}
		}
	}
	for path := range imports {
		data.Imports = append(data.Imports, path)
	}
	sort.Strings(data.Imports)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "gotypes.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}

	return out, nil
}
