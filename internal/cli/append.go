package cli

import (
	"github.com/spf13/cobra"

	"github.com/flowvars/flowvars/internal/journal"
)

// AppendOptions holds flags for the append command.
type AppendOptions struct {
	*RootOptions
	Scope  ScopeOptions
	Fields FieldOptions
}

// NewAppendCommand creates the append command.
func NewAppendCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AppendOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "append",
		Short: "Add one element to a scope's record",
		Long: `Add a single decoded element to the end of a scope's record.

The existing record is read best-effort: a missing or corrupt file
counts as empty. Only the newly appended element is printed; the file
keeps the full history.

Example:
  flowvars append --mode workspace --workflow wf-1 --field step:number:2`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrite(opts.RootOptions, &opts.Scope, &opts.Fields, journal.OpAppend, cmd)
		},
	}

	addScopeFlags(cmd, &opts.Scope)
	addFieldFlags(cmd, &opts.Fields)

	return cmd
}
