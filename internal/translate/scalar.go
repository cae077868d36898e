// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"errors"
	"fmt"

	"github.com/dacolabs/bodkin/internal/schema"
)

// ScalarKind is the semantic type of a scalar column, independent of any
// target language.
type ScalarKind int

// Scalar kinds.
const (
	KindBool ScalarKind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindInt96
	KindFloat16
	KindFloat32
	KindFloat64
	KindString
	KindBytes
)

var kindNames = [...]string{
	KindBool:    "bool",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindInt96:   "int96",
	KindFloat16: "float16",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindString:  "string",
	KindBytes:   "bytes",
}

func (k ScalarKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ScalarKind(%d)", int(k))
}

// ErrUnsupportedType is matched by every *UnsupportedTypeError.
var ErrUnsupportedType = errors.New("unsupported type")

// UnsupportedTypeError reports a scalar column whose physical/logical type
// combination has no mapping.
type UnsupportedTypeError struct {
	Field    string
	Physical schema.PhysicalType
	Logical  *schema.LogicalType
}

func (e *UnsupportedTypeError) Error() string {
	if e.Logical != nil {
		return fmt.Sprintf("field %q: unsupported logical type %s (physical %s)", e.Field, e.Logical, e.Physical)
	}
	return fmt.Sprintf("field %q: unsupported physical type %s", e.Field, e.Physical)
}

// Is reports whether target is ErrUnsupportedType.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

var intKinds = map[[2]int]ScalarKind{
	{8, 1}:  KindInt8,
	{16, 1}: KindInt16,
	{32, 1}: KindInt32,
	{64, 1}: KindInt64,
	{8, 0}:  KindUint8,
	{16, 0}: KindUint16,
	{32, 0}: KindUint32,
	{64, 0}: KindUint64,
}

// MapScalar resolves the semantic kind of a scalar column. The logical type,
// when present, takes precedence over the physical type.
func MapScalar(s *schema.Scalar) (ScalarKind, error) {
	unsupported := &UnsupportedTypeError{Field: s.Name, Physical: s.Physical, Logical: s.Logical}

	if lt := s.Logical; lt != nil {
		switch lt.Kind {
		case schema.String:
			return KindString, nil
		case schema.Integer:
			signed := 0
			if lt.Signed {
				signed = 1
			}
			if kind, ok := intKinds[[2]int{lt.BitWidth, signed}]; ok {
				return kind, nil
			}
			return 0, unsupported
		case schema.Float16:
			return KindFloat16, nil
		default:
			return 0, unsupported
		}
	}

	switch s.Physical {
	case schema.Boolean:
		return KindBool, nil
	case schema.Int32:
		return KindInt32, nil
	case schema.Int64:
		return KindInt64, nil
	case schema.Int96:
		return KindInt96, nil
	case schema.Float:
		return KindFloat32, nil
	case schema.Double:
		return KindFloat64, nil
	case schema.ByteArray, schema.FixedLenByteArray:
		return KindBytes, nil
	default:
		return 0, unsupported
	}
}
