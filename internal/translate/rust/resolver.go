// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rust

import "github.com/dacolabs/bodkin/internal/translate"

type resolver struct{}

var scalarTypes = map[translate.ScalarKind]string{
	translate.KindBool:    "bool",
	translate.KindInt8:    "i8",
	translate.KindInt16:   "i16",
	translate.KindInt32:   "i32",
	translate.KindInt64:   "i64",
	translate.KindUint8:   "u8",
	translate.KindUint16:  "u16",
	translate.KindUint32:  "u32",
	translate.KindUint64:  "u64",
	translate.KindInt96:   "i96",
	translate.KindFloat16: "f16",
	translate.KindFloat32: "f32",
	translate.KindFloat64: "f64",
	translate.KindString:  "String",
	translate.KindBytes:   "Vec<u8>",
}

// Reserved words that cannot be used as plain field identifiers.
var keywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "dyn": true, "else": true, "enum": true, "extern": true,
	"false": true, "fn": true, "for": true, "if": true, "impl": true, "in": true,
	"let": true, "loop": true, "match": true, "mod": true, "move": true,
	"mut": true, "pub": true, "ref": true, "return": true, "static": true,
	"struct": true, "trait": true, "true": true, "type": true, "unsafe": true,
	"use": true, "where": true, "while": true, "abstract": true, "become": true,
	"box": true, "do": true, "final": true, "macro": true, "override": true,
	"priv": true, "typeof": true, "unsized": true, "virtual": true, "yield": true,
	"try": true, "gen": true,
}

// Path keywords have no raw form, so they get a trailing underscore instead.
var pathKeywords = map[string]bool{
	"self": true, "Self": true, "super": true, "crate": true,
}

func escape(name string) string {
	switch {
	case pathKeywords[name]:
		return name + "_"
	case keywords[name]:
		return "r#" + name
	}
	return name
}

func (r *resolver) ScalarType(kind translate.ScalarKind) string {
	return scalarTypes[kind]
}

func (r *resolver) RecordType(recordName string) string {
	return recordName
}

func (r *resolver) FormatRecordName(name string) string {
	return escape(name)
}

func (r *resolver) EnrichField(f *translate.Field) {
	f.Name = escape(f.Name)
}
