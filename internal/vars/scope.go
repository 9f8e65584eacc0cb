package vars

import "fmt"

// ScopeMode selects how the scope identifier for an operation is derived.
type ScopeMode string

const (
	// ScopeModeAuto derives the scope from the engine-supplied execution
	// identifier. Each run of a workflow gets its own record (default).
	ScopeModeAuto ScopeMode = "auto"

	// ScopeModeCustom uses a caller-supplied literal as the scope
	// identifier. An empty literal is valid and selects the record at
	// the empty name.
	ScopeModeCustom ScopeMode = "custom"

	// ScopeModeWorkspace uses the stable workflow identifier. All runs
	// of the same workflow share one record - this is a deliberate
	// global namespace, not a uniqueness bug.
	ScopeModeWorkspace ScopeMode = "workspace"
)

// ValidateScopeMode checks if mode is a valid scope mode.
// Returns error if mode is not one of: auto, custom, workspace.
//
// Only outer surfaces (CLI flags, HTTP requests) validate; ResolveScope
// itself accepts any mode and falls through to auto behavior.
func ValidateScopeMode(mode string) error {
	switch ScopeMode(mode) {
	case ScopeModeAuto, ScopeModeCustom, ScopeModeWorkspace:
		return nil
	case "":
		// Empty is valid - will default to auto
		return nil
	default:
		return fmt.Errorf("invalid scope mode %q: must be auto, custom, or workspace", mode)
	}
}

// ResolveScope derives the scope identifier for an operation.
//
// custom returns customID verbatim, workspace returns workflowID, and
// auto - along with any unrecognized mode - returns executionID. No
// charset validation is performed; callers own the safety of identifiers
// used as path components.
func ResolveScope(mode ScopeMode, customID, workflowID, executionID string) string {
	switch mode {
	case ScopeModeCustom:
		return customID
	case ScopeModeWorkspace:
		return workflowID
	default:
		return executionID
	}
}
