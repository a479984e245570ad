// Package cli holds what the taskdesk subcommands share: opening the store,
// resolving credentials and formatting output.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/taskdesk/internal/app"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/logging"
)

type contextKey string

const appKey contextKey = "app"

// WithApp returns a context whose commands use application instead of
// opening the configured store. Tests inject an in-memory app this way.
func WithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, appKey, application)
}

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	logFile io.Closer
	owned   bool
}

// GetCLIFromContext returns the app injected with WithApp, or loads the
// configuration and opens the store
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if application, ok := ctx.Value(appKey).(*app.App); ok && application != nil {
		return &CLI{App: application}, nil
	}
	return NewCLI(ctx)
}

// NewCLI loads the configuration, starts file logging and opens the database
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := logging.Init(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:     application,
		logFile: logFile,
		owned:   true,
	}, nil
}

// Close cleans up CLI resources. An injected app is left open.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.logFile != nil {
		_ = c.logFile.Close()
	}
	return err
}

// Open is the usual preamble of a command: get the CLI or report the failure
func Open(ctx context.Context, formatter *OutputFormatter) (*CLI, error) {
	cliInstance, err := GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			logFormatError(fmtErr)
		}
		return nil, reported(ExitError, err)
	}
	return cliInstance, nil
}

// CloseQuietly closes c and logs any failure
func CloseQuietly(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

func logFormatError(err error) {
	slog.Error("Error formatting error message", "error", err)
}
