// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package protobuf translates schemas to Protocol Buffers (proto3) messages.
package protobuf

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/dacolabs/bodkin/internal/schema"
	"github.com/dacolabs/bodkin/internal/translate"
)

//go:embed protobuf.proto.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "protobuf.proto.tmpl"))

// Translator translates schemas to Protocol Buffers (proto3) message definitions.
type Translator struct{}

// FileExtension returns the file extension for Protocol Buffers files.
func (t *Translator) FileExtension() string {
	return ".proto"
}

// Translate converts a schema tree to proto3 message definitions.
func (t *Translator) Translate(root *schema.Root, opts ...translate.Option) ([]byte, error) {
	data, err := translate.Prepare(root, &resolver{}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}

	// Field numbers follow column order.
	for i := range data.Records {
		translate.DedupeFieldNames(data.Records[i].Fields)
		for j := range data.Records[i].Fields {
			data.Records[i].Fields[j].Tag = fmt.Sprintf("= %d", j+1)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "protobuf.proto.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}
