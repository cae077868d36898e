// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package markdown

import (
	"strings"

	"github.com/dacolabs/bodkin/internal/translate"
)

type resolver struct{}

func (r *resolver) ScalarType(kind translate.ScalarKind) string {
	return kind.String()
}

func (r *resolver) RecordType(recordName string) string {
	return "[" + recordName + "](#" + anchor(recordName) + ")"
}

func (r *resolver) FormatRecordName(name string) string {
	return name
}

func (r *resolver) EnrichField(f *translate.Field) {
	f.Name = strings.ReplaceAll(f.Column, "|", `\|`)
}

// anchor approximates the heading id GitHub assigns.
func anchor(heading string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(heading) {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r == '-', r == '_', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}
