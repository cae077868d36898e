// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jsonschema

import (
	gjs "github.com/google/jsonschema-go/jsonschema"

	"github.com/dacolabs/bodkin/internal/translate"
)

const defsPrefix = "#/$defs/"

type resolver struct{}

// ScalarType returns the kind name; Translate turns it into a schema with scalarSchema.
func (r *resolver) ScalarType(kind translate.ScalarKind) string {
	return kind.String()
}

func (r *resolver) RecordType(recordName string) string {
	return recordName
}

func (r *resolver) FormatRecordName(name string) string {
	return name
}

func (r *resolver) EnrichField(_ *translate.Field) {}

func scalarSchema(kind string) *gjs.Schema {
	switch kind {
	case "bool":
		return &gjs.Schema{Type: "boolean"}
	case "int8", "int16", "int32", "int64":
		return &gjs.Schema{Type: "integer", Format: kind}
	case "uint8", "uint16", "uint32", "uint64":
		zero := 0.0
		return &gjs.Schema{Type: "integer", Format: kind, Minimum: &zero}
	case "float16", "float32", "float64":
		return &gjs.Schema{Type: "number", Format: kind}
	case "string":
		return &gjs.Schema{Type: "string"}
	case "int96":
		return &gjs.Schema{Type: "string", Format: kind, ContentEncoding: "base64"}
	default:
		return &gjs.Schema{Type: "string", ContentEncoding: "base64"}
	}
}

func fieldSchema(f translate.Field) *gjs.Schema {
	if f.Record {
		return &gjs.Schema{Ref: defsPrefix + f.Type}
	}
	return scalarSchema(f.Type)
}
