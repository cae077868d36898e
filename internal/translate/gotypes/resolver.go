// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gotypes

import (
	"strings"
	"unicode"

	"github.com/dacolabs/bodkin/internal/translate"
)

const (
	float16Import = "github.com/x448/float16"
	int96Import   = "github.com/parquet-go/parquet-go/deprecated"
)

type resolver struct{}

var scalarTypes = map[translate.ScalarKind]string{
	translate.KindBool:    "bool",
	translate.KindInt8:    "int8",
	translate.KindInt16:   "int16",
	translate.KindInt32:   "int32",
	translate.KindInt64:   "int64",
	translate.KindUint8:   "uint8",
	translate.KindUint16:  "uint16",
	translate.KindUint32:  "uint32",
	translate.KindUint64:  "uint64",
	translate.KindInt96:   "deprecated.Int96",
	translate.KindFloat16: "float16.Float16",
	translate.KindFloat32: "float32",
	translate.KindFloat64: "float64",
	translate.KindString:  "string",
	translate.KindBytes:   "[]byte",
}

// typeImports maps qualified scalar types to the package they need.
var typeImports = map[string]string{
	"deprecated.Int96": int96Import,
	"float16.Float16":  float16Import,
}

func (r *resolver) ScalarType(kind translate.ScalarKind) string {
	return scalarTypes[kind]
}

func (r *resolver) RecordType(recordName string) string {
	return recordName
}

func (r *resolver) FormatRecordName(name string) string {
	return toPascalCase(name)
}

func (r *resolver) EnrichField(f *translate.Field) {
	f.Tag = "`parquet:\"" + f.Column + "\"`"
	f.Name = toPascalCase(f.Name)
}

// Common Go acronyms that should be fully uppercased.
var acronyms = map[string]string{
	"id":   "ID",
	"url":  "URL",
	"http": "HTTP",
	"api":  "API",
	"json": "JSON",
	"xml":  "XML",
	"sql":  "SQL",
	"html": "HTML",
	"ip":   "IP",
	"tcp":  "TCP",
	"udp":  "UDP",
	"tls":  "TLS",
	"ssl":  "SSL",
	"ssh":  "SSH",
	"cpu":  "CPU",
	"uri":  "URI",
	"uuid": "UUID",
}

// toPascalCase converts a column or group name to an exported Go identifier.
// Any character that cannot appear in an identifier splits words, common
// acronyms are fully uppercased, and a leading digit is prefixed with "X".
func toPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var sb strings.Builder
	for _, part := range parts {
		lower := strings.ToLower(part)
		if acronym, ok := acronyms[lower]; ok {
			sb.WriteString(acronym)
		} else {
			sb.WriteString(translate.Capitalize(part))
		}
	}

	out := sb.String()
	if out == "" {
		return "X"
	}
	if first := []rune(out)[0]; unicode.IsDigit(first) || !unicode.IsUpper(first) {
		out = "X" + out
	}
	return out
}
