// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package parquetfile reads the schema embedded in a Parquet file footer.
package parquetfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/format"

	"github.com/dacolabs/bodkin/internal/schema"
)

// ErrUnreadable indicates the file cannot be opened or its schema cannot be parsed.
var ErrUnreadable = errors.New("unreadable parquet file")

// Open reads the schema of the Parquet file at path.
func Open(path string) (*schema.Root, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close() //nolint:errcheck

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	root, err := Read(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// Read parses the footer of a Parquet file of the given size and returns its schema.
// Only metadata is read; page indexes and bloom filters are skipped.
func Read(r io.ReaderAt, size int64) (*schema.Root, error) {
	f, err := parquet.OpenFile(r, size,
		parquet.SkipPageIndex(true),
		parquet.SkipBloomFilters(true),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	root, err := FromElements(f.Metadata().Schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return root, nil
}

type frame struct {
	group     *schema.Group
	remaining int32
}

// FromElements rebuilds a schema tree from the depth-first flattened
// element list stored in a file footer. The first element is the root.
// The tree is built with an explicit stack so hostile nesting cannot
// exhaust the goroutine stack.
func FromElements(elements []format.SchemaElement) (*schema.Root, error) {
	if len(elements) == 0 {
		return nil, errors.New("empty schema")
	}

	rootEl := &elements[0]
	if !isGroup(rootEl) {
		return nil, fmt.Errorf("root element %q is not a group", rootEl.Name)
	}
	if rootEl.NumChildren < 0 {
		return nil, fmt.Errorf("element %q has negative child count", rootEl.Name)
	}

	root := &schema.Group{Name: rootEl.Name}
	stack := []frame{{group: root, remaining: rootEl.NumChildren}}

	for i := 1; i < len(elements); i++ {
		for len(stack) > 0 && stack[len(stack)-1].remaining == 0 {
			stack = stack[:len(stack)-1]
		}
		el := &elements[i]
		if len(stack) == 0 {
			return nil, fmt.Errorf("unexpected trailing element %q", el.Name)
		}

		parent := &stack[len(stack)-1]
		parent.remaining--

		if !isGroup(el) {
			parent.group.Fields = append(parent.group.Fields, &schema.Scalar{
				Name:     el.Name,
				Physical: schema.PhysicalType(*el.Type),
				Logical:  logicalType(el.LogicalType),
			})
			continue
		}

		if el.NumChildren < 0 {
			return nil, fmt.Errorf("element %q has negative child count", el.Name)
		}
		g := &schema.Group{Name: el.Name}
		parent.group.Fields = append(parent.group.Fields, g)
		stack = append(stack, frame{group: g, remaining: el.NumChildren})
	}

	for _, fr := range stack {
		if fr.remaining > 0 {
			return nil, fmt.Errorf("group %q is missing %d child element(s)", fr.group.Name, fr.remaining)
		}
	}

	return &schema.Root{Name: rootEl.Name, Group: root}, nil
}

// Group elements carry no physical type.
func isGroup(el *format.SchemaElement) bool {
	return el.Type == nil
}

func logicalType(lt *format.LogicalType) *schema.LogicalType {
	if lt == nil || *lt == (format.LogicalType{}) {
		return nil
	}

	switch {
	case lt.UTF8 != nil:
		return &schema.LogicalType{Kind: schema.String}
	case lt.Integer != nil:
		return &schema.LogicalType{
			Kind:     schema.Integer,
			BitWidth: int(lt.Integer.BitWidth),
			Signed:   lt.Integer.IsSigned,
		}
	case lt.Float16 != nil:
		return &schema.LogicalType{Kind: schema.Float16}
	}
	return &schema.LogicalType{Kind: schema.Other, Name: lt.String()}
}
