package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/taskdesk/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*UserRepo
	*TaskRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		UserRepo: &UserRepo{db: db},
		TaskRepo: &TaskRepo{db: db},
	}
}

// Wrapper methods for UserRepo
func (r *Repository) CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error) {
	return r.UserRepo.Create(ctx, username, passwordHash)
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.UserRepo.GetByUsername(ctx, username)
}

func (r *Repository) UpdateUserPasswordHash(ctx context.Context, username, passwordHash string) error {
	return r.UserRepo.UpdatePasswordHash(ctx, username, passwordHash)
}

// Wrapper methods for TaskRepo
func (r *Repository) CreateTask(ctx context.Context, username, title string) (*models.Task, error) {
	return r.TaskRepo.Create(ctx, username, title)
}

func (r *Repository) CreateTaskWithinLimit(ctx context.Context, username, title string, limit int) (*models.Task, error) {
	return r.TaskRepo.CreateWithinLimit(ctx, username, title, limit)
}

func (r *Repository) GetTasksByUser(ctx context.Context, username string, limit int) ([]*models.Task, error) {
	return r.TaskRepo.GetByUser(ctx, username, limit)
}

func (r *Repository) GetTaskByID(ctx context.Context, id int) (*models.Task, error) {
	return r.TaskRepo.GetByID(ctx, id)
}

func (r *Repository) GetTaskCountByUser(ctx context.Context, username string) (int, error) {
	return r.TaskRepo.GetCountByUser(ctx, username)
}

func (r *Repository) GetCompletedTaskCountByUser(ctx context.Context, username string) (int, error) {
	return r.TaskRepo.GetCompletedCountByUser(ctx, username)
}

func (r *Repository) MarkTaskComplete(ctx context.Context, id int) error {
	return r.TaskRepo.MarkComplete(ctx, id)
}

func (r *Repository) MarkOwnedTaskComplete(ctx context.Context, id int, owner string) error {
	return r.TaskRepo.MarkOwnedComplete(ctx, id, owner)
}

func (r *Repository) DeleteTask(ctx context.Context, id int) error {
	return r.TaskRepo.Delete(ctx, id)
}

func (r *Repository) DeleteOwnedTask(ctx context.Context, id int, owner string) error {
	return r.TaskRepo.DeleteOwned(ctx, id, owner)
}

var _ DataStore = (*Repository)(nil)
