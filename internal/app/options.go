package app

import (
	"log/slog"

	"github.com/thenoetrevino/taskdesk/internal/services/auth"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	hasher auth.Hasher
	logger *slog.Logger
}

// WithHasher overrides the password hasher chosen by config
func WithHasher(h auth.Hasher) Option {
	return func(cfg *appConfig) {
		cfg.hasher = h
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
