package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/taskdesk/internal/models"
	taskservice "github.com/thenoetrevino/taskdesk/internal/services/task"
)

// ErrPasswordRequired is returned when no password was given and stdin is
// not a terminal that could be prompted.
var ErrPasswordRequired = errors.New("password required: use --password or set TASKDESK_PASSWORD")

// CodedError carries the process exit code for a failed command.
// Reported is set once the error has been shown to the user.
type CodedError struct {
	Code     int
	Err      error
	Reported bool
}

func (e *CodedError) Error() string {
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	return &CodedError{Code: code, Err: err}
}

// reported marks err as already shown to the user
func reported(code int, err error) error {
	return &CodedError{Code: code, Err: err, Reported: true}
}

// Usagef returns a usage error with ExitUsage
func Usagef(format string, args ...any) error {
	return Exit(ExitUsage, fmt.Errorf(format, args...))
}

// IsReported reports whether err was already printed by a command
func IsReported(err error) bool {
	var exitErr *CodedError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodedError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	code, _ := Classify(err)
	return code
}

// Classify returns the exit code and machine-readable error code for a
// service error
func Classify(err error) (exitCode int, code string) {
	switch {
	case errors.Is(err, models.ErrAuthenticationFailed):
		return ExitAuth, "AUTHENTICATION_FAILED"
	case errors.Is(err, models.ErrUsernameTaken):
		return ExitError, "USERNAME_TAKEN"
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return ExitNotFound, "TASK_NOT_FOUND"
	case errors.Is(err, models.ErrTaskLimitReached):
		return ExitValidation, "TASK_LIMIT_REACHED"
	case errors.Is(err, models.ErrInvalidInput):
		return ExitValidation, "VALIDATION_ERROR"
	case errors.Is(err, ErrPasswordRequired):
		return ExitUsage, "PASSWORD_REQUIRED"
	case errors.Is(err, models.ErrStorage):
		return ExitError, "STORAGE_ERROR"
	default:
		return ExitError, "ERROR"
	}
}

// suggestionFor returns a hint for errors the user can fix themselves
func suggestionFor(err error) string {
	switch {
	case errors.Is(err, models.ErrAuthenticationFailed):
		return "Create an account with: taskdesk user register --user <name>"
	case errors.Is(err, models.ErrUsernameTaken):
		return "Pick another username or log in with: taskdesk user login"
	case errors.Is(err, models.ErrTaskLimitReached):
		return "Finish or delete a task first: taskdesk task delete <id>"
	case errors.Is(err, ErrPasswordRequired):
		return "Pass --password or export TASKDESK_PASSWORD"
	}
	return ""
}
