// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"
	"strings"
)

// Identifier rewrites s into [A-Za-z_][A-Za-z0-9_]*, the identifier syntax
// shared by Avro names and Protocol Buffers fields. Other characters become
// underscores.
func Identifier(s string) string {
	if s == "" {
		return "_"
	}
	var b strings.Builder
	b.Grow(len(s) + 1)
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// DedupeFieldNames suffixes field names that more than one column maps to,
// e.g. "user_id" and "user-id". The first field keeps its name; later ones
// get the lowest numeric suffix from 2 that no other field uses.
func DedupeFieldNames(fields []Field) {
	original := make(map[string]bool, len(fields))
	for _, f := range fields {
		original[f.Name] = true
	}

	used := make(map[string]bool, len(fields))
	for i := range fields {
		name := fields[i].Name
		if used[name] {
			candidate := name
			for n := 2; used[candidate] || original[candidate]; n++ {
				candidate = fmt.Sprintf("%s%d", name, n)
			}
			fields[i].Name = candidate
		}
		used[fields[i].Name] = true
	}
}
