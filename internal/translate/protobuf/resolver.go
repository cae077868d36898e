// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package protobuf

import (
	"github.com/dacolabs/bodkin/internal/translate"
)

type resolver struct{}

var scalarTypes = map[translate.ScalarKind]string{
	translate.KindBool:    "bool",
	translate.KindInt8:    "int32",
	translate.KindInt16:   "int32",
	translate.KindInt32:   "int32",
	translate.KindInt64:   "int64",
	translate.KindUint8:   "uint32",
	translate.KindUint16:  "uint32",
	translate.KindUint32:  "uint32",
	translate.KindUint64:  "uint64",
	translate.KindInt96:   "bytes",
	translate.KindFloat16: "float",
	translate.KindFloat32: "float",
	translate.KindFloat64: "double",
	translate.KindString:  "string",
	translate.KindBytes:   "bytes",
}

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
