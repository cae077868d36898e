// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package avro translates schemas to Apache Avro record schemas.
package avro

import (
	"github.com/dacolabs/bodkin/internal/translate"
)

type resolver struct{}

// Avro has no unsigned or 8/16-bit integers; each kind maps to the smallest
// signed type that holds every value.
var scalarTypes = map[translate.ScalarKind]string{
	translate.KindBool:    "boolean",
	translate.KindInt8:    "int",
	translate.KindInt16:   "int",
	translate.KindInt32:   "int",
	translate.KindInt64:   "long",
	translate.KindUint8:   "int",
	translate.KindUint16:  "int",
	translate.KindUint32:  "long",
	translate.KindUint64:  "long",
	translate.KindInt96:   int96Type,
	translate.KindFloat16: "float",
	translate.KindFloat32: "float",
	translate.KindFloat64: "double",
	translate.KindString:  "string",
	translate.KindBytes:   "bytes",
}

const int96Type = "fixed:12"

func (r *resolver) ScalarType(kind translate.ScalarKind) string {
	return scalarTypes[kind]
}

func (r *resolver) RecordType(recordName string) string {
	return recordName
}

func (r *resolver) FormatRecordName(name string) string {
	return translate.Identifier(name)
}

func (r *resolver) EnrichField(f *translate.Field) {
	f.Name = translate.Identifier(f.Name)
}
