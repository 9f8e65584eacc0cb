package vars

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FieldType declares how a field's raw value is decoded before storage.
type FieldType string

const (
	// FieldTypeString stores the raw value verbatim.
	FieldTypeString FieldType = "string"

	// FieldTypeNumber parses the raw value as a numeric literal.
	// An unparsable input stores 0 - NaN is not representable in the
	// JSON record file, so fail-soft-to-zero is the chosen convention.
	FieldTypeNumber FieldType = "number"

	// FieldTypeBoolean maps the literal string "true" to true and every
	// other string to false. An already-boolean raw value is kept as-is.
	FieldTypeBoolean FieldType = "boolean"

	// FieldTypeArray parses the raw value as JSON after normalizing
	// single quotes to double quotes. Parse failure stores the original
	// raw string.
	FieldTypeArray FieldType = "array"

	// FieldTypeObject behaves like FieldTypeArray for object input.
	FieldTypeObject FieldType = "object"
)

// Field is one {name, type, value} triple supplied by the caller.
// Value is usually a string (engine parameters arrive as strings) but
// may already carry a typed value on the HTTP path.
type Field struct {
	Name  string    `json:"name" yaml:"name"`
	Type  FieldType `json:"type" yaml:"type"`
	Value any       `json:"value" yaml:"value"`
}

// Object is one decoded array element of a record.
type Object = map[string]any

// Record is the full persisted array for one scope.
type Record = []Object

// DecodeFields decodes an ordered field list into a single flat object.
// Later fields with the same name overwrite earlier ones.
//
// Decoding never fails: every unparsable input degrades to a default
// per the field type (CP-2).
func DecodeFields(fields []Field) Object {
	obj := make(Object, len(fields))
	for _, f := range fields {
		obj[f.Name] = decodeValue(f)
	}
	return obj
}

// decodeValue applies the type-tag decoding rules to one field.
// Unrecognized type tags fall back to string behavior.
func decodeValue(f Field) any {
	switch f.Type {
	case FieldTypeNumber:
		return decodeNumber(f.Value)
	case FieldTypeBoolean:
		return decodeBoolean(f.Value)
	case FieldTypeArray, FieldTypeObject:
		return decodeStructured(f.Value)
	default:
		return rawString(f.Value)
	}
}

// rawString returns the raw value as a string. Non-string input is
// stringified with the default Go formatting.
func rawString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// decodeNumber parses the raw value as a float64.
// Already-numeric input passes through; unparsable input stores 0.
func decodeNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	}
	f, err := strconv.ParseFloat(rawString(v), 64)
	if err != nil {
		return 0
	}
	return f
}

// decodeBoolean maps the raw value to a bool.
// Only the exact string literal "true" is true; "True", "1" and every
// other string are false. No error path.
func decodeBoolean(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	if s, ok := v.(string); ok {
		return s == "true"
	}
	return false
}

// decodeStructured parses the raw value as JSON after replacing every
// single quote with a double quote. The substitution is a heuristic for
// loosely-quoted input and corrupts values that legitimately contain
// apostrophes; on parse failure the ORIGINAL raw string is stored
// unchanged, which is the documented failure mode.
func decodeStructured(v any) any {
	// Already-structured input (HTTP path) passes through untouched.
	switch v.(type) {
	case map[string]any, []any:
		return v
	}

	raw := rawString(v)
	normalized := strings.ReplaceAll(raw, "'", `"`)

	var parsed any
	if err := json.Unmarshal([]byte(normalized), &parsed); err != nil {
		return raw
	}
	return parsed
}
