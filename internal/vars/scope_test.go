package vars

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveScope_Custom(t *testing.T) {
	got := ResolveScope(ScopeModeCustom, "my-scope", "wf-1", "exec-1")
	assert.Equal(t, "my-scope", got)
}

func TestResolveScope_CustomEmptyIsValid(t *testing.T) {
	// An empty custom id selects the record at the empty name.
	got := ResolveScope(ScopeModeCustom, "", "wf-1", "exec-1")
	assert.Equal(t, "", got)
}

func TestResolveScope_Workspace(t *testing.T) {
	got := ResolveScope(ScopeModeWorkspace, "ignored", "wf-1", "exec-1")
	assert.Equal(t, "wf-1", got)
}

func TestResolveScope_WorkspaceStableAcrossExecutions(t *testing.T) {
	// Two executions of the same workflow must land on the same scope.
	first := ResolveScope(ScopeModeWorkspace, "", "wf-1", "exec-1")
	second := ResolveScope(ScopeModeWorkspace, "", "wf-1", "exec-2")
	assert.Equal(t, first, second)
	assert.Equal(t, "wf-1", first)
}

func TestResolveScope_Auto(t *testing.T) {
	got := ResolveScope(ScopeModeAuto, "ignored", "wf-1", "exec-1")
	assert.Equal(t, "exec-1", got)
}

func TestResolveScope_UnknownModeFallsThroughToAuto(t *testing.T) {
	got := ResolveScope(ScopeMode("bogus"), "custom", "wf-1", "exec-1")
	assert.Equal(t, "exec-1", got)
}

func TestValidateScopeMode(t *testing.T) {
	tests := []struct {
		mode    string
		wantErr bool
	}{
		{"auto", false},
		{"custom", false},
		{"workspace", false},
		{"", false}, // empty defaults to auto
		{"global", true},
		{"AUTO", true},
	}

	for _, tt := range tests {
		err := ValidateScopeMode(tt.mode)
		if tt.wantErr {
			assert.Error(t, err, "mode %q", tt.mode)
		} else {
			assert.NoError(t, err, "mode %q", tt.mode)
		}
	}
}
