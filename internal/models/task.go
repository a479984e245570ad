package models

// Task is a single to-do item owned by a user.
// Tasks only ever move Pending -> Completed, or get deleted.
type Task struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// GetID lets the CLI quiet formatter print just the identifier.
func (t *Task) GetID() int {
	return t.ID
}

// Status returns a short human label for the task state
func (t *Task) Status() string {
	if t.Completed {
		return StatusCompleted
	}
	return StatusPending
}
