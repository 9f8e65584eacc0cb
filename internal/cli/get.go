package cli

import (
	"github.com/spf13/cobra"

	"github.com/flowvars/flowvars/internal/journal"
	"github.com/flowvars/flowvars/internal/vars"
)

// GetOptions holds flags for the get command.
type GetOptions struct {
	*RootOptions
	Scope ScopeOptions
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Read the record for a scope",
		Long: `Read the record for a scope.

A scope with no record prints an empty result - missing and corrupt
record files are not errors.

Example:
  flowvars get --mode custom --scope shared-config
  flowvars get --mode workspace --workflow wf-1 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(opts, cmd)
		},
	}

	addScopeFlags(cmd, &opts.Scope)

	return cmd
}

func runGet(opts *GetOptions, cmd *cobra.Command) error {
	scopeID, executionID, err := opts.Scope.Resolve(vars.UUIDv7Generator{})
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid scope flags", err)
	}

	store := openStore(opts.RootOptions)
	records := store.Get(scopeID)
	recordJournal(opts.RootOptions, journal.OpGet, scopeID, nil)

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Print(CLIResponse{
		Status:      "ok",
		Op:          journal.OpGet,
		ScopeID:     scopeID,
		ExecutionID: executionID,
		Records:     records,
	})
}
