package database

import (
	"context"

	"github.com/thenoetrevino/taskdesk/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTasksByUser(ctx context.Context, username string, limit int) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id int) (*models.Task, error)
	GetTaskCountByUser(ctx context.Context, username string) (int, error)
	GetCompletedTaskCountByUser(ctx context.Context, username string) (int, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, username, title string) (*models.Task, error)
	CreateTaskWithinLimit(ctx context.Context, username, title string, limit int) (*models.Task, error)
	MarkTaskComplete(ctx context.Context, id int) error
	MarkOwnedTaskComplete(ctx context.Context, id int, owner string) error
	DeleteTask(ctx context.Context, id int) error
	DeleteOwnedTask(ctx context.Context, id int, owner string) error
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}
