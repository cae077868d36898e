// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// TypeResolver names scalar kinds and records in a target language.
// Each translator implements this interface to control how schemas map to its output format.
type TypeResolver interface {
	// ScalarType maps a resolved scalar kind to a target type string.
	ScalarType(kind ScalarKind) string

	// RecordType returns the type string used by a field that holds a nested record.
	RecordType(recordName string) string

	// FormatRecordName formats a record name for the target language.
	// It receives the capitalized group name.
	FormatRecordName(name string) string

	// EnrichField applies language-specific post-processing to a resolved field.
	// It may mutate any combination of the field's properties:
	//   - Name: rename for target conventions (e.g. snake_case to PascalCase for Go)
	//   - Tag:  set annotations (e.g. parquet struct tags for Go)
	// Called once per field after type resolution, before template execution.
	EnrichField(f *Field)
}
