package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowvars/flowvars/internal/vars"
)

func writeFieldSet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fields.cue")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFieldSet(t *testing.T) {
	path := writeFieldSet(t, `
fields: [
	{name: "title", type: "string", value: "intro"},
	{name: "age", type: "number", value: "42"},
	{name: "active", type: "boolean", value: true},
]
`)

	fields, err := LoadFieldSet(path)
	require.NoError(t, err)
	require.Len(t, fields, 3)

	assert.Equal(t, "title", fields[0].Name)
	assert.Equal(t, vars.FieldTypeString, fields[0].Type)
	assert.Equal(t, "intro", fields[0].Value)

	assert.Equal(t, vars.FieldTypeNumber, fields[1].Type)
	assert.Equal(t, "42", fields[1].Value)

	assert.Equal(t, true, fields[2].Value)
}

func TestLoadFieldSet_DecodesThroughStore(t *testing.T) {
	path := writeFieldSet(t, `
fields: [
	{name: "tags", type: "array", value: "['a', 'b']"},
]
`)

	fields, err := LoadFieldSet(path)
	require.NoError(t, err)

	obj := vars.DecodeFields(fields)
	assert.Equal(t, []any{"a", "b"}, obj["tags"])
}

func TestLoadFieldSet_MissingFile(t *testing.T) {
	_, err := LoadFieldSet("/nonexistent/fields.cue")
	require.Error(t, err)
}

func TestLoadFieldSet_NoFieldsList(t *testing.T) {
	path := writeFieldSet(t, `other: 1`)

	_, err := LoadFieldSet(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no fields list")
}

func TestLoadFieldSet_EmptyList(t *testing.T) {
	path := writeFieldSet(t, `fields: []`)

	_, err := LoadFieldSet(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadFieldSet_MissingName(t *testing.T) {
	path := writeFieldSet(t, `
fields: [
	{type: "string", value: "x"},
]
`)

	_, err := LoadFieldSet(path)
	require.Error(t, err)
}
