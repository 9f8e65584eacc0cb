package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/flowvars/flowvars/internal/vars"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation failure
	ExitCommandError = 2 // Command error (invalid flags, missing files, etc.)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// CLIResponse is the JSON envelope printed by data commands.
type CLIResponse struct {
	Status      string      `json:"status"`
	Op          string      `json:"op,omitempty"`
	ScopeID     string      `json:"scope_id"`
	ExecutionID string      `json:"execution_id,omitempty"`
	Records     vars.Record `json:"records,omitempty"`
	Record      vars.Object `json:"record,omitempty"`
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Print writes a command response in the configured format.
func (f *OutputFormatter) Print(resp CLIResponse) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	fmt.Fprintf(f.Writer, "scope: %s\n", resp.ScopeID)
	if resp.ExecutionID != "" {
		fmt.Fprintf(f.Writer, "execution: %s\n", resp.ExecutionID)
	}

	if resp.Records != nil {
		fmt.Fprintf(f.Writer, "records: %d\n", len(resp.Records))
		for i, obj := range resp.Records {
			if err := f.printObject(fmt.Sprintf("[%d]", i), obj); err != nil {
				return err
			}
		}
	}
	if resp.Record != nil {
		if err := f.printObject(resp.Op, resp.Record); err != nil {
			return err
		}
	}
	return nil
}

func (f *OutputFormatter) printObject(label string, obj vars.Object) error {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintf(f.Writer, "%s %s\n", label, data)
	return nil
}
