// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jsonschema

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dacolabs/bodkin/internal/schema"
	"github.com/dacolabs/bodkin/internal/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, output []byte) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(output, &doc))
	return doc
}

func TestTranslate_NestedRecord(t *testing.T) {
	root := &schema.Root{
		Name: "test",
		Group: schema.NewGroup("test",
			schema.NewString("name"),
			schema.NewGroup("addr", schema.NewString("city")),
		),
	}

	output, err := (&Translator{}).Translate(root)
	require.NoError(t, err)

	doc := decode(t, output)
	assert.Equal(t, Draft, doc["$schema"])
	assert.Equal(t, "Test", doc["title"])
	assert.Equal(t, "object", doc["type"])

	props := doc["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string"}, props["name"])
	assert.Equal(t, map[string]any{"$ref": "#/$defs/Addr"}, props["addr"])
	assert.ElementsMatch(t, []any{"name", "addr"}, doc["required"])

	defs := doc["$defs"].(map[string]any)
	addr := defs["Addr"].(map[string]any)
	assert.Equal(t, "Addr", addr["title"])
	assert.Equal(t, map[string]any{"type": "string"}, addr["properties"].(map[string]any)["city"])
}

// keyOrder returns the member names of a JSON object in document order.
func keyOrder(t *testing.T, raw json.RawMessage) []string {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	require.NoError(t, err)
	require.Equal(t, json.Delim('{'), tok)

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		require.NoError(t, err)
		keys = append(keys, tok.(string))
		var skip json.RawMessage
		require.NoError(t, dec.Decode(&skip))
	}
	return keys
}

func TestTranslate_PropertiesKeepColumnOrder(t *testing.T) {
	root := &schema.Root{
		Name: "t",
		Group: schema.NewGroup("t",
			schema.NewString("zeta"),
			schema.NewGroup("inner",
				schema.NewScalar("y", schema.Int32),
				schema.NewScalar("b", schema.Int32),
			),
			schema.NewString("alpha"),
			schema.NewGroup("before", schema.NewString("x")),
			schema.NewScalar("mid", schema.Boolean),
		),
	}

	output, err := (&Translator{}).Translate(root)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(output, &doc))
	assert.Equal(t, []string{"zeta", "inner", "alpha", "before", "mid"}, keyOrder(t, doc["properties"]))
	assert.Equal(t, []string{"Inner", "Before"}, keyOrder(t, doc["$defs"]))

	var defs map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc["$defs"], &defs))
	assert.Equal(t, []string{"y", "b"}, keyOrder(t, defs["Inner"]["properties"]))

	var required []string
	require.NoError(t, json.Unmarshal(doc["required"], &required))
	assert.Equal(t, []string{"zeta", "inner", "alpha", "before", "mid"}, required)
}

func TestTranslate_ScalarSchemas(t *testing.T) {
	root := &schema.Root{
		Name: "types",
		Group: schema.NewGroup("types",
			schema.NewScalar("flag", schema.Boolean),
			schema.NewScalar("n", schema.Int64),
			schema.NewInt("u", 8, false),
			schema.NewScalar("d", schema.Double),
			schema.NewScalar("raw", schema.ByteArray),
			schema.NewScalar("ts", schema.Int96),
		),
	}

	output, err := (&Translator{}).Translate(root)
	require.NoError(t, err)

	props := decode(t, output)["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "boolean"}, props["flag"])
	assert.Equal(t, map[string]any{"type": "integer", "format": "int64"}, props["n"])
	assert.Equal(t, map[string]any{"type": "integer", "format": "uint8", "minimum": 0.0}, props["u"])
	assert.Equal(t, map[string]any{"type": "number", "format": "float64"}, props["d"])
	assert.Equal(t, map[string]any{"type": "string", "contentEncoding": "base64"}, props["raw"])
	assert.Equal(t, map[string]any{"type": "string", "format": "int96", "contentEncoding": "base64"}, props["ts"])
}

func TestTranslate_NoDefsForFlatSchema(t *testing.T) {
	root := &schema.Root{Name: "t", Group: schema.NewGroup("t", schema.NewString("a"))}

	output, err := (&Translator{}).Translate(root)
	require.NoError(t, err)

	_, ok := decode(t, output)["$defs"]
	assert.False(t, ok)
}

func TestTranslate_Deterministic(t *testing.T) {
	root := &schema.Root{
		Name: "t",
		Group: schema.NewGroup("t",
			schema.NewGroup("b", schema.NewString("x")),
			schema.NewGroup("a", schema.NewString("y")),
			schema.NewScalar("z", schema.Float),
		),
	}

	first, err := (&Translator{}).Translate(root)
	require.NoError(t, err)
	second, err := (&Translator{}).Translate(root)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTranslate_UnsupportedType(t *testing.T) {
	root := &schema.Root{Name: "t", Group: schema.NewGroup("t", schema.NewInt("odd", 12, true))}

	_, err := (&Translator{}).Translate(root)
	assert.ErrorIs(t, err, translate.ErrUnsupportedType)
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, ".schema.json", (&Translator{}).FileExtension())
}
