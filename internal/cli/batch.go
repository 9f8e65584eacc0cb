package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/flowvars/flowvars/internal/journal"
	"github.com/flowvars/flowvars/internal/vars"
)

// BatchFile is an ordered list of store operations loaded from YAML.
// Batches are used to seed shared scopes and to script multi-step
// pipelines outside the workflow engine.
type BatchFile struct {
	Steps []BatchStep `yaml:"steps"`
}

// BatchStep is one operation in a batch file.
type BatchStep struct {
	// Op is one of get, set, append.
	Op string `yaml:"op"`

	// Scope selection, same semantics as the data command flags.
	Mode      string `yaml:"mode,omitempty"`
	Scope     string `yaml:"scope,omitempty"`
	Workflow  string `yaml:"workflow,omitempty"`
	Execution string `yaml:"execution,omitempty"`

	// Fields for set/append steps.
	Fields []vars.Field `yaml:"fields,omitempty"`
}

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions

	// Generator allows overriding the execution id generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	Generator vars.ExecutionIDGenerator
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Run an ordered list of operations from a YAML file",
		Long: `Run an ordered list of get/set/append operations from a YAML file.

Example file:
  steps:
    - op: set
      mode: custom
      scope: shared
      fields:
        - {name: title, type: string, value: intro}
    - op: append
      mode: custom
      scope: shared
      fields:
        - {name: step, type: number, value: "2"}
    - op: get
      mode: custom
      scope: shared`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(opts, args[0], cmd)
		},
	}

	return cmd
}

func runBatch(opts *BatchOptions, path string, cmd *cobra.Command) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "read batch file", err)
	}

	var batch BatchFile
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return WrapExitError(ExitCommandError, "parse batch file", err)
	}
	if len(batch.Steps) == 0 {
		return NewExitError(ExitCommandError, "batch file has no steps")
	}

	gen := opts.Generator
	if gen == nil {
		gen = vars.UUIDv7Generator{}
	}

	store := openStore(opts.RootOptions)
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	for i, step := range batch.Steps {
		if err := runBatchStep(opts, store, formatter, gen, step); err != nil {
			return WrapExitError(ExitFailure, fmt.Sprintf("step %d (%s)", i+1, step.Op), err)
		}
	}

	return nil
}

func runBatchStep(opts *BatchOptions, store *vars.Store, formatter *OutputFormatter, gen vars.ExecutionIDGenerator, step BatchStep) error {
	scope := ScopeOptions{
		Mode:        step.Mode,
		CustomID:    step.Scope,
		WorkflowID:  step.Workflow,
		ExecutionID: step.Execution,
	}
	if scope.Mode == "" {
		scope.Mode = "auto"
	}

	scopeID, executionID, err := scope.Resolve(gen)
	if err != nil {
		return err
	}

	resp := CLIResponse{
		Status:      "ok",
		Op:          step.Op,
		ScopeID:     scopeID,
		ExecutionID: executionID,
	}

	switch step.Op {
	case journal.OpGet:
		resp.Records = store.Get(scopeID)
		recordJournal(opts.RootOptions, journal.OpGet, scopeID, nil)
	case journal.OpSet:
		obj, err := store.Set(scopeID, step.Fields)
		if err != nil {
			return err
		}
		resp.Record = obj
		recordJournal(opts.RootOptions, journal.OpSet, scopeID, step.Fields)
	case journal.OpAppend:
		obj, err := store.Append(scopeID, step.Fields)
		if err != nil {
			return err
		}
		resp.Record = obj
		recordJournal(opts.RootOptions, journal.OpAppend, scopeID, step.Fields)
	default:
		return fmt.Errorf("unknown op %q: must be get, set, or append", step.Op)
	}

	return formatter.Print(resp)
}
