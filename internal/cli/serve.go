package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowvars/flowvars/internal/api"
	"github.com/flowvars/flowvars/internal/config"
	"github.com/flowvars/flowvars/internal/journal"
	"github.com/flowvars/flowvars/internal/vars"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP side-car",
		Long: `Run the HTTP side-car exposing the store to workflow steps.

The server shuts down gracefully on SIGINT/SIGTERM.

Example:
  flowvars serve --addr :8787 --data-dir /data/flowvars --journal /data/flowvars.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (defaults to FLOWVARS_LISTEN_ADDR)")

	return cmd
}

func runServe(opts *ServeOptions) error {
	cfg := config.Load()

	// Flags win over environment configuration.
	if opts.Addr != "" {
		cfg.ListenAddr = opts.Addr
	}
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}
	if opts.Journal != "" {
		cfg.JournalPath = opts.Journal
	}
	if opts.Verbose {
		cfg.LogLevel = slog.LevelDebug
	}

	logger := config.NewLogger(os.Stderr, cfg.LogLevel)

	var jnl *journal.Journal
	if cfg.JournalPath != "" {
		var err error
		jnl, err = journal.Open(cfg.JournalPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "open journal", err)
		}
		defer func() {
			if closeErr := jnl.Close(); closeErr != nil {
				logger.Error("error closing journal", "error", closeErr)
			}
		}()
		logger.Info("journal ready", "path", cfg.JournalPath)
	}

	store := vars.NewStore(cfg.DataDir)
	logger.Info("starting side-car",
		"listen_addr", cfg.ListenAddr,
		"data_dir", cfg.DataDir,
	)

	srv := api.NewServer(cfg.ListenAddr, store, jnl, logger)
	if err := srv.Run(); err != nil {
		return WrapExitError(ExitFailure, "server error", err)
	}
	return nil
}
