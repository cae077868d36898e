// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/dacolabs/bodkin/internal/schema"
)

// DefaultMaxDepth bounds group nesting when no WithMaxDepth option is given.
const DefaultMaxDepth = 64

var (
	// ErrMaxDepth indicates the schema nests groups deeper than allowed.
	ErrMaxDepth = errors.New("schema nesting exceeds maximum depth")

	// ErrNameCollision indicates two distinct groups produce the same record name.
	ErrNameCollision = errors.New("record name collision")

	// ErrEmptySchema indicates a schema without a root group.
	ErrEmptySchema = errors.New("schema has no root group")
)

// CollisionPolicy decides what happens when two groups produce the same record name.
type CollisionPolicy string

// Collision policies.
const (
	// CollisionQualify keeps the first claim and prefixes later ones with
	// their parent record name.
	CollisionQualify CollisionPolicy = "qualify"
	// CollisionError fails the whole run.
	CollisionError CollisionPolicy = "error"
	// CollisionAllow emits duplicate record names unchanged.
	CollisionAllow CollisionPolicy = "allow"
)

// CollisionPolicies lists the accepted policy names.
var CollisionPolicies = []CollisionPolicy{CollisionQualify, CollisionError, CollisionAllow}

// ParseCollisionPolicy validates a policy name.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	for _, p := range CollisionPolicies {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown collision policy %q (want qualify, error or allow)", s)
}

type options struct {
	maxDepth  int
	collision CollisionPolicy
	pkg       string
}

// Option configures Prepare.
type Option func(*options)

// WithMaxDepth bounds how many group levels may be nested below the root.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// WithCollisionPolicy sets how duplicate record names are handled.
func WithCollisionPolicy(p CollisionPolicy) Option {
	return func(o *options) {
		if p != "" {
			o.collision = p
		}
	}
}

// WithPackage sets the package or namespace name for targets that need one.
func WithPackage(name string) Option {
	return func(o *options) {
		o.pkg = name
	}
}

// prepareContext holds mutable state during schema preparation.
type prepareContext struct {
	resolver TypeResolver
	options
	claimed map[string]string // record name -> path of the group that claimed it
}

// Prepare converts a schema tree into a SchemaData ready for template execution.
// It walks the tree depth first, resolves scalar types using the provided
// TypeResolver, and returns one record per group in dependency order: every
// nested record precedes the record that references it, and the root record
// comes last. The first unsupported column aborts the whole run.
func Prepare(root *schema.Root, resolver TypeResolver, opts ...Option) (*SchemaData, error) {
	if root == nil || root.Group == nil {
		return nil, ErrEmptySchema
	}

	ctx := &prepareContext{
		resolver: resolver,
		options:  options{maxDepth: DefaultMaxDepth, collision: CollisionQualify},
		claimed:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(&ctx.options)
	}

	rootName := resolver.FormatRecordName(Capitalize(root.Name))
	ctx.claimed[rootName] = root.Name

	records, err := ctx.expand(rootName, root.Name, root.Group.Fields, 0)
	if err != nil {
		return nil, err
	}

	return &SchemaData{
		Root:    rootName,
		Package: ctx.pkg,
		Records: records,
		Extra:   make(map[string]any),
	}, nil
}

func (c *prepareContext) expand(recordName, path string, fields []schema.Node, depth int) ([]TypeDef, error) {
	if depth > c.maxDepth {
		return nil, fmt.Errorf("%w (%d) at %s", ErrMaxDepth, c.maxDepth, path)
	}

	var out []TypeDef
	def := TypeDef{Name: recordName, Fields: make([]Field, 0, len(fields))}

	for _, node := range fields {
		switch n := node.(type) {
		case *schema.Group:
			childPath := path + "." + n.Name
			nested, err := c.claim(recordName, Capitalize(n.Name), childPath)
			if err != nil {
				return nil, err
			}
			defs, err := c.expand(nested, childPath, n.Fields, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, defs...)
			def.Fields = append(def.Fields, c.field(n.Name, c.resolver.RecordType(nested), true))

		case *schema.Scalar:
			kind, err := MapScalar(n)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			def.Fields = append(def.Fields, c.field(n.Name, c.resolver.ScalarType(kind), false))

		default:
			return nil, fmt.Errorf("%s: unexpected schema node %T", path, node)
		}
	}

	return append(out, def), nil
}

func (c *prepareContext) field(column, typ string, record bool) Field {
	f := Field{
		Name:   column,
		Column: column,
		Type:   typ,
		Record: record,
	}
	c.resolver.EnrichField(&f)
	return f
}

// claim reserves a record name for the group at path, applying the
// collision policy when the name is already taken.
func (c *prepareContext) claim(parent, name, path string) (string, error) {
	formatted := c.resolver.FormatRecordName(name)

	owner, taken := c.claimed[formatted]
	if !taken {
		c.claimed[formatted] = path
		return formatted, nil
	}

	switch c.collision {
	case CollisionAllow:
		return formatted, nil
	case CollisionError:
		return "", fmt.Errorf("%w: %q is produced by both %s and %s", ErrNameCollision, formatted, owner, path)
	}

	qualified := c.resolver.FormatRecordName(parent + name)
	candidate := qualified
	for i := 2; ; i++ {
		if _, taken := c.claimed[candidate]; !taken {
			break
		}
		candidate = fmt.Sprintf("%s%d", qualified, i)
	}
	c.claimed[candidate] = path
	return candidate, nil
}

// Capitalize upper-cases the first character of s and leaves the rest unchanged.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
