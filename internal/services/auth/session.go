package auth

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/taskdesk/internal/models"
)

// Session is the in-memory record of one successful login.
// It is never persisted; its ID only correlates log lines.
type Session struct {
	ID        uuid.UUID
	User      *models.User
	StartedAt time.Time
}

// NewSession starts a session for user
func NewSession(user *models.User) *Session {
	return &Session{
		ID:        uuid.New(),
		User:      user,
		StartedAt: time.Now(),
	}
}

// Username is shorthand for s.User.Username
func (s *Session) Username() string {
	return s.User.Username
}

// Logger returns a logger tagged with the session and user
func (s *Session) Logger() *slog.Logger {
	return slog.With("session", s.ID.String(), "username", s.User.Username)
}
