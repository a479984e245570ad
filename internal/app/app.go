package app

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/database"
	authservice "github.com/thenoetrevino/taskdesk/internal/services/auth"
	taskservice "github.com/thenoetrevino/taskdesk/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container shared by the TUI and the CLI.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore
	// db is set only when the App opened the connection itself
	db *sql.DB

	cfg    *config.Config
	logger *slog.Logger

	// Service layer (business logic)
	AuthService authservice.Service
	TaskService taskservice.Service
}

// New creates a new App with all services initialized from cfg.
// A nil cfg means config.Default().
func New(repo database.DataStore, cfg *config.Config, opts ...Option) *App {
	if cfg == nil {
		cfg = config.Default()
	}

	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}
	if ac.logger == nil {
		ac.logger = slog.Default()
	}
	if ac.hasher == nil {
		ac.hasher = hasherFor(cfg.Auth)
	}

	return &App{
		repo:   repo,
		cfg:    cfg,
		logger: ac.logger,
		AuthService: authservice.NewService(repo, authservice.Options{
			Hasher:        ac.hasher,
			UpgradeLegacy: cfg.Auth.UpgradeLegacy(),
			Logger:        ac.logger,
		}),
		TaskService: taskservice.NewService(repo, TaskOptions(cfg.Tasks, ac.logger)),
	}
}

// Open initializes the database at cfg.Database.Path and builds an App that
// owns the connection. Close releases it.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	a := New(database.NewRepository(db), cfg, opts...)
	a.db = db
	return a, nil
}

// TaskOptions translates the tasks config section for the task service
func TaskOptions(tc config.TaskConfig, logger *slog.Logger) taskservice.Options {
	overflow := taskservice.OverflowTruncate
	if tc.Overflow == config.OverflowReject {
		overflow = taskservice.OverflowReject
	}
	return taskservice.Options{
		Limit:      tc.TaskLimit(),
		Overflow:   overflow,
		OwnerCheck: tc.OwnerCheckEnabled(),
		Logger:     logger,
	}
}

func hasherFor(ac config.AuthConfig) authservice.Hasher {
	if ac.Hasher == config.HasherSHA256 {
		return authservice.DigestHasher{}
	}
	return authservice.NewBcryptHasher(ac.BcryptCost)
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Config returns the configuration the services were built from
func (a *App) Config() *config.Config {
	return a.cfg
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// DBContext bounds a single store operation by the configured timeout
func (a *App) DBContext(parent context.Context) (context.Context, context.CancelFunc) {
	timeout := a.cfg.Database.Timeout()
	if timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
