// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// SchemaData is the complete input passed to a translator template.
type SchemaData struct {
	Root    string         // name of the root record, always the last entry of Records
	Package string         // package or namespace requested with WithPackage, may be empty
	Records []TypeDef      // dependency order, leaves first
	Imports []string       // preamble lines the renderer emits before any record
	Extra   map[string]any // translator-specific template data
}

// TypeDef is one record definition: the target-language equivalent of a group.
type TypeDef struct {
	Name   string  // formatted record name, e.g. "Addr"
	Fields []Field // ordered fields
}

// Field is a single column or nested group within a record.
type Field struct {
	Name   string // field name (may be mutated by EnrichField)
	Column string // column name as written in the file, never mutated
	Type   string // resolved target type, or a record name when Record is set
	Record bool   // true if Type names another TypeDef
	Tag    string // language-specific annotation, e.g. `parquet:"name"`
}
