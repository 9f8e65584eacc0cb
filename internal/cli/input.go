package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowvars/flowvars/internal/config"
	"github.com/flowvars/flowvars/internal/journal"
	"github.com/flowvars/flowvars/internal/vars"
)

// ScopeOptions holds the shared scope-resolution flags for data commands.
type ScopeOptions struct {
	Mode        string
	CustomID    string
	WorkflowID  string
	ExecutionID string
}

// addScopeFlags registers the scope-resolution flags on a data command.
func addScopeFlags(cmd *cobra.Command, opts *ScopeOptions) {
	cmd.Flags().StringVar(&opts.Mode, "mode", "auto", "scope mode (auto|custom|workspace)")
	cmd.Flags().StringVar(&opts.CustomID, "scope", "", "custom scope identifier (mode=custom)")
	cmd.Flags().StringVar(&opts.WorkflowID, "workflow", "", "workflow identifier (mode=workspace)")
	cmd.Flags().StringVar(&opts.ExecutionID, "execution", "", "execution identifier (mode=auto; generated when omitted)")
}

// Resolve validates the mode and derives the scope identifier.
//
// In auto mode with no --execution value a fresh identifier is generated
// so shell steps starting a chain get a scope to pass downstream. The
// identifier actually used is returned alongside the scope.
func (o *ScopeOptions) Resolve(gen vars.ExecutionIDGenerator) (scopeID, executionID string, err error) {
	if err := vars.ValidateScopeMode(o.Mode); err != nil {
		return "", "", err
	}

	executionID = o.ExecutionID
	mode := vars.ScopeMode(o.Mode)
	if mode == "" {
		mode = vars.ScopeModeAuto
	}
	if mode == vars.ScopeModeAuto && executionID == "" {
		executionID = gen.Generate()
	}

	return vars.ResolveScope(mode, o.CustomID, o.WorkflowID, executionID), executionID, nil
}

// FieldOptions holds the field-input flags for set/append commands.
type FieldOptions struct {
	FieldFlags []string // repeated --field name:type:value
	FieldsJSON string   // --fields JSON array
	FieldsFile string   // --fields-file CUE field-set
}

// addFieldFlags registers the field-input flags on a write command.
func addFieldFlags(cmd *cobra.Command, opts *FieldOptions) {
	cmd.Flags().StringArrayVar(&opts.FieldFlags, "field", nil, "field triple name:type:value (repeatable)")
	cmd.Flags().StringVar(&opts.FieldsJSON, "fields", "", `fields as a JSON array of {"name","type","value"}`)
	cmd.Flags().StringVar(&opts.FieldsFile, "fields-file", "", "CUE field-set file")
}

// Collect gathers fields from all three sources, in order: field-set
// file, --fields JSON, then --field flags. Duplicate names resolve at
// decode time (later wins).
func (o *FieldOptions) Collect() ([]vars.Field, error) {
	var fields []vars.Field

	if o.FieldsFile != "" {
		loaded, err := LoadFieldSet(o.FieldsFile)
		if err != nil {
			return nil, err
		}
		fields = append(fields, loaded...)
	}

	if o.FieldsJSON != "" {
		parsed, err := ParseFieldsJSON(o.FieldsJSON)
		if err != nil {
			return nil, err
		}
		fields = append(fields, parsed...)
	}

	for _, raw := range o.FieldFlags {
		f, err := ParseFieldFlag(raw)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	return fields, nil
}

// ParseFieldFlag parses one --field value of the form name:type:value.
// The value part may itself contain colons.
func ParseFieldFlag(s string) (vars.Field, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return vars.Field{}, fmt.Errorf("invalid --field %q: expected name:type:value", s)
	}
	return vars.Field{Name: parts[0], Type: vars.FieldType(parts[1]), Value: parts[2]}, nil
}

// ParseFieldsJSON parses a --fields JSON array of field triples.
func ParseFieldsJSON(s string) ([]vars.Field, error) {
	var fields []vars.Field
	if err := json.Unmarshal([]byte(s), &fields); err != nil {
		return nil, fmt.Errorf("invalid --fields JSON: %w", err)
	}
	return fields, nil
}

// openStore builds the store for a data command, preferring the
// --data-dir flag over environment configuration.
func openStore(opts *RootOptions) *vars.Store {
	dir := opts.DataDir
	if dir == "" {
		dir = config.Load().DataDir
	}
	return vars.NewStore(dir)
}

// journalPath resolves the journal location, preferring the --journal
// flag over environment configuration. Empty means disabled.
func journalPath(opts *RootOptions) string {
	if opts.Journal != "" {
		return opts.Journal
	}
	return config.Load().JournalPath
}

// recordJournal appends one CLI operation to the journal, best-effort.
// Journal problems never fail the data command that triggered them.
func recordJournal(opts *RootOptions, op, scopeID string, fields []vars.Field) {
	path := journalPath(opts)
	if path == "" {
		return
	}

	jnl, err := journal.Open(path)
	if err != nil {
		return
	}
	defer jnl.Close()

	_ = jnl.Record(context.Background(), op, scopeID, fields)
}
