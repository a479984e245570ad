// Package task implements per-user task storage rules on top of the repository.
package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/taskdesk/internal/database"
	"github.com/thenoetrevino/taskdesk/internal/models"
)

// OverflowPolicy decides what happens once a user owns more than Limit tasks
type OverflowPolicy int

const (
	// OverflowTruncate accepts new tasks; FetchTasks returns only the oldest Limit rows
	OverflowTruncate OverflowPolicy = iota
	// OverflowReject refuses AddTask with ErrTaskLimitReached once the owner is at Limit
	OverflowReject
)

// String returns the config spelling of the policy
func (p OverflowPolicy) String() string {
	if p == OverflowReject {
		return "reject"
	}
	return "truncate"
}

// Service defines all task-related business operations
type Service interface {
	// Read operations
	FetchTasks(ctx context.Context, username string) ([]*models.Task, error)
	CountTasks(ctx context.Context, username string) (Summary, error)
	GetTask(ctx context.Context, actor string, taskID int) (*models.Task, error)

	// Write operations
	AddTask(ctx context.Context, username, title string) (*models.Task, error)
	MarkComplete(ctx context.Context, actor string, taskID int) error
	DeleteTask(ctx context.Context, actor string, taskID int) error
}

// Options tunes a Service
type Options struct {
	// Limit caps how many tasks FetchTasks returns; <= 0 means unbounded
	Limit    int
	Overflow OverflowPolicy
	// OwnerCheck restricts MarkComplete and DeleteTask to the actor's own rows
	OwnerCheck bool
	Logger     *slog.Logger
}

// DefaultOptions mirrors the behaviour of the first desktop build
func DefaultOptions() Options {
	return Options{
		Limit:    models.DefaultTaskLimit,
		Overflow: OverflowTruncate,
	}
}

// Summary is the per-user task count
type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	// Shown is how many rows FetchTasks would return under the configured limit
	Shown int `json:"shown"`
}

// Pending returns the number of tasks not yet completed
func (s Summary) Pending() int {
	return s.Total - s.Completed
}

// Truncated reports whether FetchTasks hides some of the owner's tasks
func (s Summary) Truncated() bool {
	return s.Shown < s.Total
}

// service implements Service interface
type service struct {
	repo   database.TaskRepository
	opts   Options
	logger *slog.Logger
}

// NewService creates a new task service
func NewService(repo database.TaskRepository, opts Options) Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		opts:   opts,
		logger: logger,
	}
}

// AddTask handles task creation with validation and the overflow policy
func (s *service) AddTask(ctx context.Context, username, title string) (*models.Task, error) {
	username = strings.TrimSpace(username)
	title = strings.TrimSpace(title)
	if err := validateAddTask(username, title); err != nil {
		return nil, err
	}

	var (
		task *models.Task
		err  error
	)
	if s.opts.Overflow == OverflowReject && s.opts.Limit > 0 {
		task, err = s.repo.CreateTaskWithinLimit(ctx, username, title, s.opts.Limit)
	} else {
		task, err = s.repo.CreateTask(ctx, username, title)
	}
	if errors.Is(err, models.ErrTaskLimitReached) {
		s.logger.Info("task rejected: limit reached", "username", username, "limit", s.opts.Limit)
		return nil, err
	}
	if err != nil {
		return nil, s.storageError("failed to create task", err, "username", username)
	}

	s.logger.Debug("task added", "username", username, "task_id", task.ID)
	return task, nil
}

// FetchTasks returns the owner's tasks in insertion order
func (s *service) FetchTasks(ctx context.Context, username string) ([]*models.Task, error) {
	tasks, err := s.repo.GetTasksByUser(ctx, username, s.opts.Limit)
	if err != nil {
		return nil, s.storageError("failed to fetch tasks", err, "username", username)
	}
	return tasks, nil
}

// CountTasks returns totals for the owner, independent of the fetch limit
func (s *service) CountTasks(ctx context.Context, username string) (Summary, error) {
	total, err := s.repo.GetTaskCountByUser(ctx, username)
	if err != nil {
		return Summary{}, s.storageError("failed to count tasks", err, "username", username)
	}
	completed, err := s.repo.GetCompletedTaskCountByUser(ctx, username)
	if err != nil {
		return Summary{}, s.storageError("failed to count completed tasks", err, "username", username)
	}

	shown := total
	if s.opts.Limit > 0 && shown > s.opts.Limit {
		shown = s.opts.Limit
	}
	return Summary{Total: total, Completed: completed, Shown: shown}, nil
}

// GetTask returns a single task. With the owner check enabled another
// user's task is reported as not found.
func (s *service) GetTask(ctx context.Context, actor string, taskID int) (*models.Task, error) {
	if err := s.validateMutation(actor, taskID); err != nil {
		return nil, err
	}

	task, err := s.repo.GetTaskByID(ctx, taskID)
	if errors.Is(err, database.ErrTaskNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, s.storageError("failed to get task", err, "actor", actor, "task_id", taskID)
	}
	if s.opts.OwnerCheck && task.Username != actor {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// MarkComplete sets the completed flag. Unknown ids are not an error.
func (s *service) MarkComplete(ctx context.Context, actor string, taskID int) error {
	if err := s.validateMutation(actor, taskID); err != nil {
		return err
	}

	var err error
	if s.opts.OwnerCheck {
		err = s.repo.MarkOwnedTaskComplete(ctx, taskID, actor)
	} else {
		err = s.repo.MarkTaskComplete(ctx, taskID)
	}
	if err != nil {
		return s.storageError("failed to complete task", err, "actor", actor, "task_id", taskID)
	}

	s.logger.Debug("task completed", "actor", actor, "task_id", taskID)
	return nil
}

// DeleteTask removes a task. Unknown ids are not an error.
func (s *service) DeleteTask(ctx context.Context, actor string, taskID int) error {
	if err := s.validateMutation(actor, taskID); err != nil {
		return err
	}

	var err error
	if s.opts.OwnerCheck {
		err = s.repo.DeleteOwnedTask(ctx, taskID, actor)
	} else {
		err = s.repo.DeleteTask(ctx, taskID)
	}
	if err != nil {
		return s.storageError("failed to delete task", err, "actor", actor, "task_id", taskID)
	}

	s.logger.Debug("task deleted", "actor", actor, "task_id", taskID)
	return nil
}

func (s *service) validateMutation(actor string, taskID int) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	if s.opts.OwnerCheck && actor == "" {
		return ErrEmptyUsername
	}
	return nil
}

func (s *service) storageError(msg string, err error, attrs ...any) error {
	s.logger.Error(msg, append(attrs, "error", err)...)
	return fmt.Errorf("%s: %w: %w", msg, models.ErrStorage, err)
}

// validateAddTask expects an already trimmed title
func validateAddTask(username, title string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
