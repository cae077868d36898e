// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jsonschema translates schemas to a JSON Schema document with one
// $defs entry per nested record.
package jsonschema

import (
	"encoding/json"
	"fmt"

	gjs "github.com/google/jsonschema-go/jsonschema"

	"github.com/dacolabs/bodkin/internal/schema"
	"github.com/dacolabs/bodkin/internal/translate"
)

// Draft is the dialect declared by generated documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Translator translates schemas to JSON Schema.
type Translator struct{}

// FileExtension returns the file extension for JSON Schema documents.
func (t *Translator) FileExtension() string {
	return ".schema.json"
}

// Translate converts a schema tree to an indented JSON Schema document.
func (t *Translator) Translate(root *schema.Root, opts ...translate.Option) ([]byte, error) {
	data, err := translate.Prepare(root, &resolver{}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}

	doc := objectSchema(data.Records[len(data.Records)-1])
	doc.base.Schema = Draft
	doc.base.Title = data.Root

	for _, rec := range data.Records[:len(data.Records)-1] {
		def := objectSchema(rec)
		def.base.Title = rec.Name
		doc.addDef(rec.Name, def)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return append(out, '\n'), nil
}

// objectSchema builds a record's schema with properties in field order.
func objectSchema(rec translate.TypeDef) *object {
	o := &object{base: &gjs.Schema{Type: "object"}}
	for _, f := range rec.Fields {
		o.addProperty(f.Name, fieldSchema(f))
		o.base.Required = append(o.base.Required, f.Name)
	}
	return o
}
