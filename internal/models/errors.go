package models

import "errors"

// Error taxonomy shared by the auth and task services.
// Callers compare with errors.Is; service errors wrap these.
var (
	// ErrInvalidInput indicates an empty or otherwise malformed field
	ErrInvalidInput = errors.New("invalid input")

	// ErrUsernameTaken indicates a registration collided with an existing account
	ErrUsernameTaken = errors.New("username already exists")

	// ErrAuthenticationFailed covers both unknown usernames and wrong passwords.
	// Callers cannot tell the two cases apart.
	ErrAuthenticationFailed = errors.New("invalid username or password")

	// ErrStorage indicates the underlying store rejected or failed a statement
	ErrStorage = errors.New("storage error")
)

// Validation errors. Each wraps ErrInvalidInput.
var (
	ErrEmptyUsername   = wrapInvalid("username cannot be empty")
	ErrUsernameTooLong = wrapInvalid("username cannot exceed 255 characters")
	ErrEmptyPassword   = wrapInvalid("password cannot be empty")
	ErrPasswordTooLong = wrapInvalid("password cannot exceed 72 bytes")
	ErrEmptyTitle      = wrapInvalid("task title cannot be empty")
	ErrTitleTooLong    = wrapInvalid("task title cannot exceed 255 characters")
	ErrInvalidTaskID   = wrapInvalid("invalid task ID")
)

// ErrTaskLimitReached is returned by AddTask when the overflow policy is reject
// and the owner already has the configured maximum number of tasks.
var ErrTaskLimitReached = errors.New("task limit reached")

type invalidInputError struct {
	msg string
}

func (e *invalidInputError) Error() string { return e.msg }

func (e *invalidInputError) Unwrap() error { return ErrInvalidInput }

func wrapInvalid(msg string) error {
	return &invalidInputError{msg: msg}
}
