package cli

import (
	"github.com/spf13/cobra"

	"github.com/flowvars/flowvars/internal/journal"
	"github.com/flowvars/flowvars/internal/vars"
)

// SetOptions holds flags for the set command.
type SetOptions struct {
	*RootOptions
	Scope  ScopeOptions
	Fields FieldOptions
}

// NewSetCommand creates the set command.
func NewSetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Overwrite a scope's record with one element",
		Long: `Overwrite a scope's record with a single decoded element.

Any existing record for the scope is replaced. Parent directories are
created as needed.

Example:
  flowvars set --mode custom --scope shared --field title:string:intro --field age:number:42
  flowvars set --mode custom --scope shared --fields-file fields.cue`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrite(opts.RootOptions, &opts.Scope, &opts.Fields, journal.OpSet, cmd)
		},
	}

	addScopeFlags(cmd, &opts.Scope)
	addFieldFlags(cmd, &opts.Fields)

	return cmd
}

// runWrite implements both set and append; the two commands differ only
// in which store operation runs.
func runWrite(rootOpts *RootOptions, scope *ScopeOptions, fieldOpts *FieldOptions, op string, cmd *cobra.Command) error {
	scopeID, executionID, err := scope.Resolve(vars.UUIDv7Generator{})
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid scope flags", err)
	}

	fields, err := fieldOpts.Collect()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid field input", err)
	}

	store := openStore(rootOpts)

	var obj vars.Object
	switch op {
	case journal.OpSet:
		obj, err = store.Set(scopeID, fields)
	case journal.OpAppend:
		obj, err = store.Append(scopeID, fields)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "write record", err)
	}
	recordJournal(rootOpts, op, scopeID, fields)

	formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Print(CLIResponse{
		Status:      "ok",
		Op:          op,
		ScopeID:     scopeID,
		ExecutionID: executionID,
		Record:      obj,
	})
}
