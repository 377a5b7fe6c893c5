package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/codegenio/codegenio/internal/app"
	"github.com/codegenio/codegenio/internal/chat"
	"github.com/codegenio/codegenio/internal/config"
	"github.com/codegenio/codegenio/internal/llm"
	"github.com/codegenio/codegenio/internal/state"
	"github.com/codegenio/codegenio/internal/store"
)

// runApp opens the store, restores the active account, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := config.Load()

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	machine := state.NewMachine(st, logger)
	machine.Restore()

	var tutor *chat.Service
	provider, err := llm.NewProviderFromEnv(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "AI tutor not configured:", err)
		fmt.Fprintln(os.Stderr, "CodeGenie will answer with a fallback message.")
		tutor = chat.NewService(nil, 0)
	} else {
		tutor = chat.NewService(provider, 0)
	}

	return app.Run(app.Options{
		Machine:   machine,
		Tutor:     tutor,
		ExportDir: cfg.ExportDir,
	})
}

// newLogger directs diagnostics to the configured log file. The
// terminal belongs to the UI, so without a file the logs are dropped.
func newLogger(cfg config.Config) (*log.Logger, func(), error) {
	if cfg.LogFile == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "", log.LstdFlags), func() { f.Close() }, nil
}
