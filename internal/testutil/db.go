package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/taskdesk/internal/database"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with full schema.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Each pooled connection would otherwise see its own empty :memory: db
	db.SetMaxOpenConns(1)

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestUser inserts a user row with the given stored credential and returns its ID
func CreateTestUser(t *testing.T, db *sql.DB, username, passwordHash string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO users (username, password) VALUES (?, ?)", username, passwordHash)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// CreateTestTask creates a test task and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, username, title string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO tasks (username, title, completed) VALUES (?, ?, 0)", username, title)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// CompleteTestTask flags a task as completed directly in the store
func CompleteTestTask(t *testing.T, db *sql.DB, taskID int) {
	t.Helper()
	if _, err := db.ExecContext(context.Background(),
		"UPDATE tasks SET completed = 1 WHERE id = ?", taskID); err != nil {
		t.Fatalf("Failed to complete test task: %v", err)
	}
}

// CountRows returns the row count of table
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
