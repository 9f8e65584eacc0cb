package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowvars/flowvars/internal/journal"
	"github.com/flowvars/flowvars/internal/vars"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Scope ScopeOptions
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show journaled operations for a scope",
		Long: `Show the operation journal entries for a scope, oldest first.

Requires journaling to be enabled via --journal or FLOWVARS_JOURNAL.

Example:
  flowvars history --journal ./flowvars.db --mode custom --scope shared`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	addScopeFlags(cmd, &opts.Scope)

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	path := journalPath(opts.RootOptions)
	if path == "" {
		return NewExitError(ExitCommandError, "journaling is disabled: set --journal or FLOWVARS_JOURNAL")
	}

	scopeID, _, err := opts.Scope.Resolve(vars.UUIDv7Generator{})
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid scope flags", err)
	}

	jnl, err := journal.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "open journal", err)
	}
	defer jnl.Close()

	entries, err := jnl.ReadScope(context.Background(), scopeID)
	if err != nil {
		return WrapExitError(ExitFailure, "read journal", err)
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	fmt.Fprintf(out, "scope: %s\n", scopeID)
	fmt.Fprintf(out, "entries: %d\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(out, "%6d  %-7s %s  fields=%d\n", e.Seq, e.Op, e.RecordedAt.Format("2006-01-02T15:04:05Z"), len(e.Fields))
	}
	return nil
}
