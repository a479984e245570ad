package database

import (
	"context"

	"github.com/thenoetrevino/taskdesk/internal/models"
)

// UserReader defines read operations for users.
type UserReader interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
// There is intentionally no delete path.
type UserWriter interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error)
	UpdateUserPasswordHash(ctx context.Context, username, passwordHash string) error
}

// UserRepository combines all user-related operations.
type UserRepository interface {
	UserReader
	UserWriter
}
