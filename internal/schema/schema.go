// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema models the self-describing schema tree embedded in a
// columnar data file.
package schema

import (
	"fmt"
	"strings"
)

// PhysicalType is the on-disk storage representation of a column.
type PhysicalType int

// Physical types. Values match the Parquet format enumeration.
const (
	Boolean PhysicalType = iota
	Int32
	Int64
	Int96
	Float
	Double
	ByteArray
	FixedLenByteArray
)

var physicalNames = [...]string{
	Boolean:           "BOOLEAN",
	Int32:             "INT32",
	Int64:             "INT64",
	Int96:             "INT96",
	Float:             "FLOAT",
	Double:            "DOUBLE",
	ByteArray:         "BYTE_ARRAY",
	FixedLenByteArray: "FIXED_LEN_BYTE_ARRAY",
}

func (t PhysicalType) String() string {
	if t >= 0 && int(t) < len(physicalNames) {
		return physicalNames[t]
	}
	return fmt.Sprintf("PhysicalType(%d)", int(t))
}

// LogicalKind identifies a logical type annotation.
type LogicalKind int

// Logical kinds. Other covers every annotation without a scalar mapping
// (dates, decimals, lists, ...).
const (
	Other LogicalKind = iota
	String
	Integer
	Float16
)

// LogicalType refines how a physical type is interpreted.
type LogicalType struct {
	Kind LogicalKind

	// BitWidth and Signed are only meaningful for Integer.
	BitWidth int
	Signed   bool

	// Name is the annotation as written in the file, e.g. "DATE".
	Name string
}

func (l *LogicalType) String() string {
	if l == nil {
		return "<none>"
	}
	switch l.Kind {
	case String:
		return "STRING"
	case Integer:
		return fmt.Sprintf("INTEGER(%d,%t)", l.BitWidth, l.Signed)
	case Float16:
		return "FLOAT16"
	default:
		if l.Name != "" {
			return l.Name
		}
		return "UNKNOWN"
	}
}

// Node is a Group or a Scalar.
type Node interface {
	NodeName() string
}

// Group is a node with ordered children.
type Group struct {
	Name   string
	Fields []Node
}

// NodeName implements Node.
func (g *Group) NodeName() string { return g.Name }

// Scalar is a leaf column.
type Scalar struct {
	Name     string
	Physical PhysicalType
	Logical  *LogicalType
}

// NodeName implements Node.
func (s *Scalar) NodeName() string { return s.Name }

// Root is a fully parsed schema with its declared root name.
type Root struct {
	Name  string
	Group *Group
}

// String renders the tree in an indented, human-readable form.
func (r *Root) String() string {
	var sb strings.Builder
	sb.WriteString("message " + r.Name + " {\n")
	if r.Group != nil {
		writeFields(&sb, r.Group.Fields, 1)
	}
	sb.WriteString("}\n")
	return sb.String()
}

func writeFields(sb *strings.Builder, fields []Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, f := range fields {
		switch n := f.(type) {
		case *Group:
			sb.WriteString(indent + "group " + n.Name + " {\n")
			writeFields(sb, n.Fields, depth+1)
			sb.WriteString(indent + "}\n")
		case *Scalar:
			sb.WriteString(indent + n.Physical.String() + " " + n.Name)
			if n.Logical != nil {
				sb.WriteString(" (" + n.Logical.String() + ")")
			}
			sb.WriteString(";\n")
		}
	}
}

// Convenience constructors, mostly used by tests and fixtures.

// NewGroup returns a Group with the given children.
func NewGroup(name string, fields ...Node) *Group {
	return &Group{Name: name, Fields: fields}
}

// NewScalar returns a Scalar without a logical type.
func NewScalar(name string, physical PhysicalType) *Scalar {
	return &Scalar{Name: name, Physical: physical}
}

// NewString returns a UTF-8 string column.
func NewString(name string) *Scalar {
	return &Scalar{Name: name, Physical: ByteArray, Logical: &LogicalType{Kind: String}}
}

// NewInt returns an integer-annotated column.
func NewInt(name string, bitWidth int, signed bool) *Scalar {
	physical := Int32
	if bitWidth > 32 {
		physical = Int64
	}
	return &Scalar{
		Name:     name,
		Physical: physical,
		Logical:  &LogicalType{Kind: Integer, BitWidth: bitWidth, Signed: signed},
	}
}
