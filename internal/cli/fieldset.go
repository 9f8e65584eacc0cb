package cli

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/flowvars/flowvars/internal/vars"
)

// LoadFieldSet loads field triples from a CUE field-set file.
//
// A field-set file declares a fields list:
//
//	fields: [
//		{name: "title", type: "string", value: "intro"},
//		{name: "age", type: "number", value: "42"},
//	]
//
// CUE gives workflow authors typed, commented, reusable field
// definitions instead of repeating --field flags in every shell step.
func LoadFieldSet(path string) ([]vars.Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read field-set %s: %w", path, err)
	}

	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("compile field-set %s: %w", path, err)
	}

	fieldsVal := value.LookupPath(cue.ParsePath("fields"))
	if !fieldsVal.Exists() {
		return nil, fmt.Errorf("field-set %s: no fields list", path)
	}

	iter, err := fieldsVal.List()
	if err != nil {
		return nil, fmt.Errorf("field-set %s: fields is not a list: %w", path, err)
	}

	var fields []vars.Field
	for iter.Next() {
		f, err := decodeFieldValue(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("field-set %s: fields[%d]: %w", path, len(fields), err)
		}
		fields = append(fields, f)
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("field-set %s: fields list is empty", path)
	}

	return fields, nil
}

// decodeFieldValue extracts one {name, type, value} triple from a CUE
// list element.
func decodeFieldValue(v cue.Value) (vars.Field, error) {
	name, err := v.LookupPath(cue.ParsePath("name")).String()
	if err != nil {
		return vars.Field{}, fmt.Errorf("name: %w", err)
	}

	typ, err := v.LookupPath(cue.ParsePath("type")).String()
	if err != nil {
		return vars.Field{}, fmt.Errorf("type: %w", err)
	}

	valueVal := v.LookupPath(cue.ParsePath("value"))
	if !valueVal.Exists() {
		return vars.Field{}, fmt.Errorf("value: missing")
	}

	// Values stay loosely typed - the store's own decoder applies the
	// type tag rules, exactly as it does for flag and HTTP input.
	var value any
	if err := valueVal.Decode(&value); err != nil {
		return vars.Field{}, fmt.Errorf("value: %w", err)
	}

	return vars.Field{Name: name, Type: vars.FieldType(typ), Value: value}, nil
}
