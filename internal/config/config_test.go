package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FLOWVARS_ENV", "")
	t.Setenv("FLOWVARS_DATA_DIR", "")
	t.Setenv("FLOWVARS_LISTEN_ADDR", "")
	t.Setenv("FLOWVARS_JOURNAL", "")
	t.Setenv("FLOWVARS_LOG_LEVEL", "")

	cfg := Load()
	assert.Equal(t, "/data/flowvars", cfg.DataDir)
	assert.Equal(t, ":8787", cfg.ListenAddr)
	assert.Equal(t, "", cfg.JournalPath)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_TestEnvSelectsTestDataDir(t *testing.T) {
	t.Setenv("FLOWVARS_ENV", "test")
	t.Setenv("FLOWVARS_DATA_DIR", "")

	cfg := Load()
	assert.Equal(t, "/tmp/flowvars-test", cfg.DataDir)
}

func TestLoad_DataDirOverrideWinsOverEnvFlag(t *testing.T) {
	t.Setenv("FLOWVARS_ENV", "test")
	t.Setenv("FLOWVARS_DATA_DIR", "/var/custom")

	cfg := Load()
	assert.Equal(t, "/var/custom", cfg.DataDir)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FLOWVARS_ENV", "")
	t.Setenv("FLOWVARS_LISTEN_ADDR", ":9000")
	t.Setenv("FLOWVARS_JOURNAL", "/tmp/journal.db")
	t.Setenv("FLOWVARS_LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "/tmp/journal.db", cfg.JournalPath)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), "level %q", tt.in)
	}
}
