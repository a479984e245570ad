// Package launcher wires configuration, logging and the store together and
// runs the interactive TUI.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/taskdesk/internal/app"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/logging"
	"github.com/thenoetrevino/taskdesk/internal/tui/core"
)

// Launch starts the TUI application
func Launch() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Log to a file; the terminal belongs to the TUI
	logFile, err := logging.Init(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		_ = logFile.Close()
	}()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	return Run(ctx, cfg)
}

// Run opens the store described by cfg and blocks until the TUI exits.
// A store that cannot be opened or migrated is fatal.
func Run(ctx context.Context, cfg *config.Config) error {
	application, err := app.Open(ctx, cfg)
	if err != nil {
		slog.Error("failed to open task store", "path", cfg.Database.Path, "error", err)
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	slog.Info("starting taskdesk", "db", cfg.Database.Path)
	if err := core.Run(ctx, application, cfg); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	slog.Info("taskdesk exited")
	return nil
}
