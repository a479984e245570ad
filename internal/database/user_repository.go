package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/thenoetrevino/taskdesk/internal/models"
)

// ErrUserNotFound is returned when no row matches the requested username
var ErrUserNotFound = errors.New("user not found")

// UserRepo handles all user-related database operations
type UserRepo struct {
	db *sql.DB
}

// Create inserts a new user row. A duplicate username surfaces as the
// driver's UNIQUE constraint error; use IsUniqueViolation to detect it.
func (r *UserRepo) Create(ctx context.Context, username, passwordHash string) (*models.User, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, password) VALUES (?, ?)",
		username, passwordHash,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:           int(id),
		Username:     username,
		PasswordHash: passwordHash,
	}, nil
}

// GetByUsername retrieves a user by exact username match
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var (
		user = &models.User{}
		hash sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, password FROM users WHERE username = ?",
		username,
	).Scan(&user.ID, &user.Username, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	user.PasswordHash = NullStringToString(hash)
	return user, nil
}

// UpdatePasswordHash replaces the stored credential for username.
// Only used to upgrade legacy digests; users are otherwise immutable.
func (r *UserRepo) UpdatePasswordHash(ctx context.Context, username, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET password = ? WHERE username = ?",
		passwordHash, username,
	)
	return err
}
