package vars

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFields_String(t *testing.T) {
	obj := DecodeFields([]Field{{Name: "title", Type: FieldTypeString, Value: "intro"}})
	assert.Equal(t, Object{"title": "intro"}, obj)
}

func TestDecodeFields_Number(t *testing.T) {
	obj := DecodeFields([]Field{{Name: "age", Type: FieldTypeNumber, Value: "42"}})
	assert.Equal(t, Object{"age": float64(42)}, obj)
}

func TestDecodeFields_NumberFloat(t *testing.T) {
	obj := DecodeFields([]Field{{Name: "ratio", Type: FieldTypeNumber, Value: "0.5"}})
	assert.Equal(t, Object{"ratio": 0.5}, obj)
}

func TestDecodeFields_NumberUnparsableStoresZero(t *testing.T) {
	// Fail-soft: NaN is not representable in the JSON record file.
	obj := DecodeFields([]Field{{Name: "age", Type: FieldTypeNumber, Value: "not-a-number"}})
	assert.Equal(t, Object{"age": float64(0)}, obj)
}

func TestDecodeFields_BooleanRawBool(t *testing.T) {
	obj := DecodeFields([]Field{{Name: "active", Type: FieldTypeBoolean, Value: true}})
	assert.Equal(t, Object{"active": true}, obj)
}

func TestDecodeFields_BooleanStringLiterals(t *testing.T) {
	tests := []struct {
		value any
		want  bool
	}{
		{"true", true},
		{"false", false},
		{"True", false}, // no case-insensitivity
		{"1", false},
		{"yes", false},
		{"", false},
		{42, false}, // non-bool non-string
	}

	for _, tt := range tests {
		obj := DecodeFields([]Field{{Name: "is_flag", Type: FieldTypeBoolean, Value: tt.value}})
		assert.Equal(t, tt.want, obj["is_flag"], "value %v", tt.value)
	}
}

func TestDecodeFields_ArraySingleQuotesNormalized(t *testing.T) {
	obj := DecodeFields([]Field{{Name: "array", Type: FieldTypeArray, Value: "['foo', 'bar']"}})
	assert.Equal(t, Object{"array": []any{"foo", "bar"}}, obj)
}

func TestDecodeFields_ObjectSingleQuotesNormalized(t *testing.T) {
	obj := DecodeFields([]Field{{Name: "meta", Type: FieldTypeObject, Value: "{'voice': 'en-US', 'speed': 1}"}})
	assert.Equal(t, Object{"meta": map[string]any{"voice": "en-US", "speed": float64(1)}}, obj)
}

func TestDecodeFields_ArrayApostropheCorruptsParse(t *testing.T) {
	// Regression test for the documented failure mode of the quote
	// heuristic: an apostrophe inside legitimate string content turns
	// into a double quote, the parse fails, and the ORIGINAL raw string
	// is stored unchanged.
	raw := "['it's got legs']"
	obj := DecodeFields([]Field{{Name: "note", Type: FieldTypeArray, Value: raw}})
	assert.Equal(t, raw, obj["note"])
}

func TestDecodeFields_ValidJSONWithApostropheAlsoCorrupts(t *testing.T) {
	// Even input that was already valid JSON loses to the heuristic when
	// it contains an apostrophe: normalization breaks it, and the raw
	// string falls back.
	raw := `["it's fine"]`
	obj := DecodeFields([]Field{{Name: "note", Type: FieldTypeArray, Value: raw}})
	assert.Equal(t, raw, obj["note"])
}

func TestDecodeFields_ArrayAlreadyStructured(t *testing.T) {
	// HTTP callers can send a real JSON array; it passes through.
	obj := DecodeFields([]Field{{Name: "tags", Type: FieldTypeArray, Value: []any{"a", "b"}}})
	assert.Equal(t, Object{"tags": []any{"a", "b"}}, obj)
}

func TestDecodeFields_UnrecognizedTypeFallsBackToString(t *testing.T) {
	obj := DecodeFields([]Field{{Name: "x", Type: FieldType("datetime"), Value: "2026-01-01"}})
	assert.Equal(t, Object{"x": "2026-01-01"}, obj)
}

func TestDecodeFields_LaterFieldOverwritesEarlier(t *testing.T) {
	obj := DecodeFields([]Field{
		{Name: "x", Type: FieldTypeString, Value: "first"},
		{Name: "x", Type: FieldTypeString, Value: "second"},
	})
	assert.Equal(t, Object{"x": "second"}, obj)
}

func TestDecodeFields_Golden(t *testing.T) {
	obj := DecodeFields([]Field{
		{Name: "name", Type: FieldTypeString, Value: "intro-video"},
		{Name: "age", Type: FieldTypeNumber, Value: "42"},
		{Name: "active", Type: FieldTypeBoolean, Value: "true"},
		{Name: "tags", Type: FieldTypeArray, Value: "['foo', 'bar']"},
		{Name: "meta", Type: FieldTypeObject, Value: "{'k': 'v'}"},
		{Name: "note", Type: FieldTypeArray, Value: "['it's got legs']"},
	})

	data, err := json.MarshalIndent(obj, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "decoded_fields", data)
}
