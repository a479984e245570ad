package database

import (
	"context"
	"database/sql"
)

// Migrate creates the schema if it does not exist yet.
// The table layout matches users.db files written by the original desktop
// build, so those open without conversion.
func Migrate(ctx context.Context, db *sql.DB) error {
	// Create users table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY,
			username TEXT UNIQUE,
			password TEXT
		)
	`)
	if err != nil {
		return err
	}

	// Create tasks table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY,
			username TEXT,
			title TEXT,
			completed INTEGER
		)
	`)
	if err != nil {
		return err
	}

	// Per-user listing is the hot query
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_tasks_username
		ON tasks(username, id)
	`)
	return err
}
