// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"

	gjs "github.com/google/jsonschema-go/jsonschema"
)

// member is one named entry of a JSON object written in a fixed position.
type member struct {
	name  string
	value any
}

// object is a JSON Schema object whose "properties" and "$defs" keep the
// order they were added in. Schema.Properties and Schema.Defs are maps and
// marshal sorted by key, so both are written here instead.
type object struct {
	base  *gjs.Schema
	props []member
	defs  []member
}

func (o *object) addProperty(name string, s *gjs.Schema) {
	o.props = append(o.props, member{name: name, value: s})
}

func (o *object) addDef(name string, def *object) {
	o.defs = append(o.defs, member{name: name, value: def})
}

// MarshalJSON writes the base schema followed by the ordered sections.
func (o *object) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(o.base)
	if err != nil {
		return nil, err
	}
	if len(raw) < 2 || raw[0] != '{' {
		return nil, fmt.Errorf("schema marshalled to %s, want an object", raw)
	}

	var buf bytes.Buffer
	buf.Write(raw[:len(raw)-1])
	first := len(raw) == 2
	for _, section := range []struct {
		key     string
		members []member
	}{
		{"properties", o.props},
		{"$defs", o.defs},
	} {
		if len(section.members) == 0 {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := writeMembers(&buf, section.key, section.members); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMembers(buf *bytes.Buffer, key string, members []member) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteString(":{")
	for i, m := range members {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(m.name)
		if err != nil {
			return err
		}
		value, err := json.Marshal(m.value)
		if err != nil {
			return fmt.Errorf("%s %q: %w", key, m.name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return nil
}
