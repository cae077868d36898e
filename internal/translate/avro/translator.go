// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avro

import (
	"encoding/json"
	"fmt"

	"github.com/dacolabs/bodkin/internal/schema"
	"github.com/dacolabs/bodkin/internal/translate"
)

// Translator translates schemas to Apache Avro schema definitions.
type Translator struct{}

// FileExtension returns the file extension for Avro schema files.
func (t *Translator) FileExtension() string {
	return ".avsc"
}

// avroRecord represents an Avro record schema.
type avroRecord struct {
	Type      string      `json:"type"`
	Name      string      `json:"name"`
	Namespace string      `json:"namespace,omitempty"`
	Fields    []avroField `json:"fields"`
}

// avroField represents a field within an Avro record.
type avroField struct {
	Name string `json:"name"`
	Type any    `json:"type"`
}

// avroFixed represents an Avro fixed type.
type avroFixed struct {
	Type string `json:"type"`
	Name string `json:"name"`
	Size int    `json:"size"`
}

// Translate converts a schema tree to an Avro schema JSON document. Each
// nested record is defined inline at its first use and referenced by name
// afterwards, as Avro requires.
func (t *Translator) Translate(root *schema.Root, opts ...translate.Option) ([]byte, error) {
	data, err := translate.Prepare(root, &resolver{}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}

	b := &builder{
		records: make(map[string]*translate.TypeDef, len(data.Records)),
		defined: make(map[string]bool),
	}
	for i := range data.Records {
		translate.DedupeFieldNames(data.Records[i].Fields)
		if _, dup := b.records[data.Records[i].Name]; !dup {
			b.records[data.Records[i].Name] = &data.Records[i]
		}
	}

	rootDef := data.Records[len(data.Records)-1]
	b.defined[rootDef.Name] = true
	rec := avroRecord{
		Type:      "record",
		Name:      rootDef.Name,
		Namespace: data.Package,
		Fields:    b.fields(rootDef.Fields),
	}

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal Avro schema: %w", err)
	}

	return append(out, '\n'), nil
}

type builder struct {
	records map[string]*translate.TypeDef
	defined map[string]bool
}

func (b *builder) fields(fields []translate.Field) []avroField {
	result := make([]avroField, 0, len(fields))
	for _, f := range fields {
		result = append(result, avroField{Name: f.Name, Type: b.fieldType(f)})
	}
	return result
}

func (b *builder) fieldType(f translate.Field) any {
	if f.Record {
		def, ok := b.records[f.Type]
		if !ok || b.defined[f.Type] {
			return f.Type
		}
		b.defined[f.Type] = true
		return avroRecord{
			Type:   "record",
			Name:   def.Name,
			Fields: b.fields(def.Fields),
		}
	}

	if f.Type == int96Type {
		if b.defined["int96"] {
			return "int96"
		}
		b.defined["int96"] = true
		return avroFixed{Type: "fixed", Name: "int96", Size: 12}
	}

	return f.Type
}
