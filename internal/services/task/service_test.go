package task

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdesk/internal/database"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newTestService(t *testing.T, opts Options) (Service, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewService(database.NewRepository(db), opts), db
}

func titles(tasks []*models.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Title
	}
	return out
}

// ============================================================================
// ADD / FETCH
// ============================================================================

func TestAddTask(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, DefaultOptions())
	ctx := context.Background()

	task, err := svc.AddTask(ctx, "alice", "Buy milk")
	require.NoError(t, err)
	assert.NotZero(t, task.ID)
	assert.Equal(t, "alice", task.Username)
	assert.Equal(t, "Buy milk", task.Title)
	assert.False(t, task.Completed)

	tasks, err := svc.FetchTasks(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
}

func TestAddTask_Validation(t *testing.T) {
	t.Parallel()
	svc, db := newTestService(t, DefaultOptions())

	tests := []struct {
		name     string
		username string
		title    string
		want     error
	}{
		{"empty title", "alice", "", ErrEmptyTitle},
		{"whitespace title", "alice", " \t ", ErrEmptyTitle},
		{"title too long", "alice", strings.Repeat("x", models.MaxTitleLength+1), ErrTitleTooLong},
		{"empty owner", "", "Buy milk", ErrEmptyUsername},
		{"whitespace owner", "  \t", "Buy milk", ErrEmptyUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddTask(context.Background(), tt.username, tt.title)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}

	assert.Equal(t, 0, testutil.CountRows(t, db, "tasks"))
}

// TestAddTask_TrimsOwner ensures a padded owner is stored under the same
// name the auth service registered, so the task shows up in that user's list.
func TestAddTask_TrimsOwner(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, DefaultOptions())
	ctx := context.Background()

	task, err := svc.AddTask(ctx, " alice ", "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, "alice", task.Username)

	tasks, err := svc.FetchTasks(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
}

// TestAddTask_TitleLengthCountsCharacters ensures the limit is on characters, not bytes.
// Edge case: 255 multibyte characters are accepted.
func TestAddTask_TitleLengthCountsCharacters(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, DefaultOptions())

	_, err := svc.AddTask(context.Background(), "alice", strings.Repeat("é", models.MaxTitleLength))
	assert.NoError(t, err)
}

func TestAddTask_DuplicateTitlesAllowed(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, DefaultOptions())
	ctx := context.Background()

	first, err := svc.AddTask(ctx, "alice", "Buy milk")
	require.NoError(t, err)
	second, err := svc.AddTask(ctx, "alice", "Buy milk")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	tasks, err := svc.FetchTasks(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestFetchTasks_ScopedAndOrdered(t *testing.T) {
	t.Parallel()
	svc, db := newTestService(t, DefaultOptions())
	ctx := context.Background()

	testutil.CreateTestTask(t, db, "alice", "a1")
	testutil.CreateTestTask(t, db, "bob", "b1")
	testutil.CreateTestTask(t, db, "alice", "a2")

	tasks, err := svc.FetchTasks(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, titles(tasks))

	tasks, err = svc.FetchTasks(ctx, "carol")
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

// TestFetchTasks_TruncatesAtLimit ensures the oldest rows are kept when the owner
// exceeds the cap, and that nothing is lost from storage.
func TestFetchTasks_TruncatesAtLimit(t *testing.T) {
	t.Parallel()
	svc, db := newTestService(t, Options{Limit: 3, Overflow: OverflowTruncate})
	ctx := context.Background()

	for _, title := range []string{"t1", "t2", "t3", "t4", "t5"} {
		_, err := svc.AddTask(ctx, "alice", title)
		require.NoError(t, err)
	}

	tasks, err := svc.FetchTasks(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2", "t3"}, titles(tasks))
	assert.Equal(t, 5, testutil.CountRows(t, db, "tasks"))

	summary, err := svc.CountTasks(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 3, summary.Shown)
	assert.True(t, summary.Truncated())
}

func TestFetchTasks_DefaultLimit(t *testing.T) {
	t.Parallel()
	svc, db := newTestService(t, DefaultOptions())

	for i := 0; i < models.DefaultTaskLimit+5; i++ {
		testutil.CreateTestTask(t, db, "alice", "task")
	}

	tasks, err := svc.FetchTasks(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, tasks, models.DefaultTaskLimit)
}

func TestFetchTasks_Unbounded(t *testing.T) {
	t.Parallel()
	svc, db := newTestService(t, Options{Limit: 0})

	for i := 0; i < models.DefaultTaskLimit+5; i++ {
		testutil.CreateTestTask(t, db, "alice", "task")
	}

	tasks, err := svc.FetchTasks(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, tasks, models.DefaultTaskLimit+5)
}

func TestAddTask_RejectAtLimit(t *testing.T) {
	t.Parallel()
	svc, db := newTestService(t, Options{Limit: 2, Overflow: OverflowReject})
	ctx := context.Background()

	_, err := svc.AddTask(ctx, "alice", "t1")
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, "alice", "t2")
	require.NoError(t, err)

	_, err = svc.AddTask(ctx, "alice", "t3")
	assert.ErrorIs(t, err, ErrTaskLimitReached)
	assert.Equal(t, 2, testutil.CountRows(t, db, "tasks"))

	// Cap is per owner
	_, err = svc.AddTask(ctx, "bob", "b1")
	assert.NoError(t, err)
}

// ============================================================================
// MUTATIONS
// ============================================================================

func TestMarkComplete(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, DefaultOptions())
	ctx := context.Background()

	task, err := svc.AddTask(ctx, "alice", "Buy milk")
	require.NoError(t, err)

	require.NoError(t, svc.MarkComplete(ctx, "alice", task.ID))
	// Idempotent
	require.NoError(t, svc.MarkComplete(ctx, "alice", task.ID))

	tasks, err := svc.FetchTasks(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Completed)

	summary, err := svc.CountTasks(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 1, Completed: 1, Shown: 1}, summary)
	assert.Equal(t, 0, summary.Pending())
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, DefaultOptions())
	ctx := context.Background()

	keep, err := svc.AddTask(ctx, "alice", "keep")
	require.NoError(t, err)
	drop, err := svc.AddTask(ctx, "alice", "drop")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, "alice", drop.ID))

	tasks, err := svc.FetchTasks(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID, tasks[0].ID)
}

// TestDeleteCompletedTask ensures Completed tasks can still be deleted
func TestDeleteCompletedTask(t *testing.T) {
	t.Parallel()
	svc, db := newTestService(t, DefaultOptions())
	ctx := context.Background()

	id := testutil.CreateTestTask(t, db, "alice", "done")
	testutil.CompleteTestTask(t, db, id)

	require.NoError(t, svc.DeleteTask(ctx, "alice", id))
	assert.Equal(t, 0, testutil.CountRows(t, db, "tasks"))
}

func TestMutations_UnknownIDIsNoop(t *testing.T) {
	t.Parallel()
	svc, db := newTestService(t, DefaultOptions())
	ctx := context.Background()
	testutil.CreateTestTask(t, db, "alice", "t1")

	assert.NoError(t, svc.MarkComplete(ctx, "alice", 9999))
	assert.NoError(t, svc.DeleteTask(ctx, "alice", 9999))
	assert.Equal(t, 1, testutil.CountRows(t, db, "tasks"))
}

func TestMutations_InvalidID(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, DefaultOptions())
	ctx := context.Background()

	assert.ErrorIs(t, svc.MarkComplete(ctx, "alice", 0), ErrInvalidTaskID)
	assert.ErrorIs(t, svc.DeleteTask(ctx, "alice", -1), ErrInvalidTaskID)
}

// TestMutations_OwnerCheckDisabled keeps the original cross-user behaviour:
// any caller can complete or delete any task id.
func TestMutations_OwnerCheckDisabled(t *testing.T) {
	t.Parallel()
	svc, db := newTestService(t, Options{Limit: 100, OwnerCheck: false})
	ctx := context.Background()

	a := testutil.CreateTestTask(t, db, "alice", "a1")
	b := testutil.CreateTestTask(t, db, "alice", "a2")

	require.NoError(t, svc.MarkComplete(ctx, "bob", a))
	require.NoError(t, svc.DeleteTask(ctx, "bob", b))

	tasks, err := svc.FetchTasks(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Completed)
}

// TestMutations_OwnerCheckEnabled ensures foreign ids behave like unknown ids.
// Security value: users cannot modify or inspect other users' tasks.
func TestMutations_OwnerCheckEnabled(t *testing.T) {
	t.Parallel()
	svc, db := newTestService(t, Options{Limit: 100, OwnerCheck: true})
	ctx := context.Background()

	a := testutil.CreateTestTask(t, db, "alice", "a1")

	assert.NoError(t, svc.MarkComplete(ctx, "bob", a))
	assert.NoError(t, svc.DeleteTask(ctx, "bob", a))

	tasks, err := svc.FetchTasks(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.False(t, tasks[0].Completed)

	require.NoError(t, svc.MarkComplete(ctx, "alice", a))
	require.NoError(t, svc.DeleteTask(ctx, "alice", a))
	assert.Equal(t, 0, testutil.CountRows(t, db, "tasks"))

	assert.ErrorIs(t, svc.DeleteTask(ctx, "", a), ErrEmptyUsername)
}

func TestStorageFailureWrapped(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db), DefaultOptions())
	require.NoError(t, db.Close())

	_, err := svc.FetchTasks(context.Background(), "alice")
	assert.ErrorIs(t, err, models.ErrStorage)

	_, err = svc.AddTask(context.Background(), "alice", "t1")
	assert.ErrorIs(t, err, models.ErrStorage)
}

func TestOverflowPolicy_String(t *testing.T) {
	assert.Equal(t, "truncate", OverflowTruncate.String())
	assert.Equal(t, "reject", OverflowReject.String())
}

func TestGetTask(t *testing.T) {
	t.Parallel()
	svc, db := newTestService(t, DefaultOptions())
	ctx := context.Background()

	id := testutil.CreateTestTask(t, db, "alice", "a1")

	task, err := svc.GetTask(ctx, "bob", id)
	require.NoError(t, err, "without the owner check any task is visible")
	assert.Equal(t, "a1", task.Title)
	assert.Equal(t, "alice", task.Username)

	_, err = svc.GetTask(ctx, "alice", id+100)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.GetTask(ctx, "alice", 0)
	assert.ErrorIs(t, err, ErrInvalidTaskID)
}

// TestGetTask_OwnerCheck ensures foreign tasks look exactly like missing ones.
// Security value: task ids of other users cannot be discovered.
func TestGetTask_OwnerCheck(t *testing.T) {
	t.Parallel()
	svc, db := newTestService(t, Options{Limit: 100, OwnerCheck: true})
	ctx := context.Background()

	id := testutil.CreateTestTask(t, db, "alice", "a1")

	_, err := svc.GetTask(ctx, "bob", id)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	task, err := svc.GetTask(ctx, "alice", id)
	require.NoError(t, err)
	assert.Equal(t, id, task.ID)
}
