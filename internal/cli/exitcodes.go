package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, duplicate usernames, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, malformed task IDs, or a missing
	// password when no terminal is available to prompt for it.
	ExitUsage = 2

	// ExitNotFound indicates a requested task does not exist (or, with the
	// owner check enabled, belongs to someone else).
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Empty or overlong titles and usernames, or a full task list
	// under the reject overflow policy.
	ExitValidation = 5

	// ExitAuth indicates the username/password pair was rejected.
	ExitAuth = 6
)
