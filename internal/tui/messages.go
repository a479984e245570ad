package tui

// User-facing feedback. The wording is kept from the first desktop build.
const (
	msgFillAllFields      = "Please fill in all fields!"
	msgRegistered         = "Registration successful! Redirecting to login..."
	msgRegisterFailed     = "Username already exists or invalid input!"
	msgLoggedIn           = "Login successful! Redirecting to dashboard..."
	msgLoginFailed        = "Invalid username or password!"
	msgStorageUnavailable = "Could not reach the task store. Please try again!"
	msgLoggedOut          = "You have been logged out."
	msgEmptyTitle         = "Task title cannot be empty!"
	msgTitleTooLong       = "Task title cannot exceed 255 characters!"
	msgTaskLimit          = "Task limit reached! Delete or finish a task first."
	msgNoTaskSelected     = "No task selected"
	msgLoadFailed         = "Could not load your tasks!"
	msgSaveFailed         = "Could not save your change!"
)
