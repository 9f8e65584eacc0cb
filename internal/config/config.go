package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// prodDataDir is the fixed production-mode record root.
	prodDataDir = "/data/flowvars"
	// testDataDir is the fixed test-mode record root, selected by
	// FLOWVARS_ENV=test.
	testDataDir = "/tmp/flowvars-test"

	defaultListenAddr = ":8787"

	envEnv        = "FLOWVARS_ENV"
	envDataDir    = "FLOWVARS_DATA_DIR"
	envListenAddr = "FLOWVARS_LISTEN_ADDR"
	envJournal    = "FLOWVARS_JOURNAL"
	envLogLevel   = "FLOWVARS_LOG_LEVEL"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	// DataDir is the record root. FLOWVARS_DATA_DIR overrides the
	// env-selected default.
	DataDir string

	// ListenAddr is the HTTP side-car bind address.
	ListenAddr string

	// JournalPath is the SQLite operation journal location.
	// Empty disables journaling.
	JournalPath string

	LogLevel slog.Level
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	cfg := Config{
		DataDir:    prodDataDir,
		ListenAddr: defaultListenAddr,
		LogLevel:   slog.LevelInfo,
	}

	if strings.EqualFold(os.Getenv(envEnv), "test") {
		cfg.DataDir = testDataDir
	}
	if v := os.Getenv(envDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(envListenAddr); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv(envJournal); v != "" {
		cfg.JournalPath = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = parseLogLevel(v)
	}

	return cfg
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a structured JSON logger writing to w at the configured level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
