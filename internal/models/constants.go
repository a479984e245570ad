package models

// Task status labels
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// MaxTitleLength is the longest task title accepted, in characters.
// Matches the 256 byte input buffers of the first desktop build minus the terminator.
const MaxTitleLength = 255

// MaxUsernameLength is the longest username accepted, in bytes
const MaxUsernameLength = 255

// DefaultTaskLimit is how many tasks FetchTasks returns per user unless configured otherwise.
const DefaultTaskLimit = 100
