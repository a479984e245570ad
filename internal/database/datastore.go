package database

// DataStore defines the unified interface for all data operations needed by
// the services. Consumers can depend on the smaller UserRepository or
// TaskRepository interfaces instead.
type DataStore interface {
	UserRepository
	TaskRepository
}
