package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/thenoetrevino/taskdesk/internal/models"
)

// ErrTaskNotFound is returned by GetByID when no row has the given id
var ErrTaskNotFound = errors.New("task not found")

// TaskRepo handles all task-related database operations
type TaskRepo struct {
	db *sql.DB
}

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Create inserts a pending task for username
func (r *TaskRepo) Create(ctx context.Context, username, title string) (*models.Task, error) {
	return insertTask(ctx, r.db, username, title)
}

// CreateWithinLimit inserts a pending task only if username owns fewer than
// limit tasks. The count and insert share one transaction.
func (r *TaskRepo) CreateWithinLimit(ctx context.Context, username, title string, limit int) (*models.Task, error) {
	var task *models.Task
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		count, err := countTasks(ctx, tx, username)
		if err != nil {
			return err
		}
		if limit > 0 && count >= limit {
			return models.ErrTaskLimitReached
		}

		task, err = insertTask(ctx, tx, username, title)
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func insertTask(ctx context.Context, q querier, username, title string) (*models.Task, error) {
	result, err := q.ExecContext(ctx,
		"INSERT INTO tasks (username, title, completed) VALUES (?, ?, 0)",
		username, title,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Task{
		ID:       int(id),
		Username: username,
		Title:    title,
	}, nil
}

// GetByUser retrieves tasks owned by username in insertion order.
// A limit <= 0 returns every row.
func (r *TaskRepo) GetByUser(ctx context.Context, username string, limit int) ([]*models.Task, error) {
	query := `SELECT id, username, title, completed
		 FROM tasks
		 WHERE username = ?
		 ORDER BY id`
	args := []any{username}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// GetByID retrieves a single task
func (r *TaskRepo) GetByID(ctx context.Context, id int) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, username, title, completed FROM tasks WHERE id = ?",
		id,
	)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var (
		task      = &models.Task{}
		username  sql.NullString
		title     sql.NullString
		completed sql.NullInt64
	)
	if err := row.Scan(&task.ID, &username, &title, &completed); err != nil {
		return nil, err
	}
	task.Username = NullStringToString(username)
	task.Title = NullStringToString(title)
	task.Completed = completed.Valid && completed.Int64 != 0
	return task, nil
}

// GetCountByUser returns the number of tasks owned by username
func (r *TaskRepo) GetCountByUser(ctx context.Context, username string) (int, error) {
	return countTasks(ctx, r.db, username)
}

// GetCompletedCountByUser returns the number of completed tasks owned by username
func (r *TaskRepo) GetCompletedCountByUser(ctx context.Context, username string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM tasks WHERE username = ? AND completed = 1",
		username,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func countTasks(ctx context.Context, q querier, username string) (int, error) {
	var count int
	err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks WHERE username = ?", username).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MarkComplete sets completed on any task with the given id.
// Unknown ids and already completed tasks are left as they are.
func (r *TaskRepo) MarkComplete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, "UPDATE tasks SET completed = 1 WHERE id = ?", id)
	return err
}

// MarkOwnedComplete is MarkComplete restricted to rows owned by owner
func (r *TaskRepo) MarkOwnedComplete(ctx context.Context, id int, owner string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET completed = 1 WHERE id = ? AND username = ?",
		id, owner,
	)
	return err
}

// Delete removes a task from the database
func (r *TaskRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	return err
}

// DeleteOwned is Delete restricted to rows owned by owner
func (r *TaskRepo) DeleteOwned(ctx context.Context, id int, owner string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ? AND username = ?", id, owner)
	return err
}
