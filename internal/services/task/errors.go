package task

import (
	"github.com/thenoetrevino/taskdesk/internal/database"
	"github.com/thenoetrevino/taskdesk/internal/models"
)

// Task-related errors. These alias the shared taxonomy so callers can match
// either name with errors.Is.
var (
	// Validation errors
	ErrEmptyUsername = models.ErrEmptyUsername
	ErrEmptyTitle    = models.ErrEmptyTitle
	ErrTitleTooLong  = models.ErrTitleTooLong
	ErrInvalidTaskID = models.ErrInvalidTaskID

	// Business logic errors
	ErrTaskLimitReached = models.ErrTaskLimitReached
	ErrTaskNotFound     = database.ErrTaskNotFound
)
