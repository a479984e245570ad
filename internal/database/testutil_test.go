package database

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Every pooled connection would otherwise get its own empty :memory: db
	db.SetMaxOpenConns(1)

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// createTestTasks inserts one task per title for username and returns their ids
func createTestTasks(t *testing.T, repo *Repository, username string, titles ...string) []int {
	t.Helper()
	ids := make([]int, 0, len(titles))
	for _, title := range titles {
		task, err := repo.CreateTask(context.Background(), username, title)
		if err != nil {
			t.Fatalf("Failed to create task %q: %v", title, err)
		}
		ids = append(ids, task.ID)
	}
	return ids
}
