package task

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdesk/internal/cli"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/testutil"
	clitest "github.com/thenoetrevino/taskdesk/internal/testutil/cli"
)

func creds(user string) []string {
	return []string{"--user", user, "--password", "pw1"}
}

func TestAddTask_Positive(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	clitest.RegisterTestUser(t, app, "alice", "pw1")

	t.Run("human output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(),
			append(creds("alice"), "--title", "Buy milk"))

		require.NoError(t, err)
		assert.Contains(t, output, "created: Buy milk")
	})

	t.Run("quiet mode prints the id", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(),
			append(creds("alice"), "--title", "Walk dog", "--quiet"))

		require.NoError(t, err)
		var id int
		_, scanErr := fmt.Sscanf(output, "%d\n", &id)
		require.NoError(t, scanErr)
		assert.Positive(t, id)
	})

	t.Run("json output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(),
			append(creds("alice"), "--title", "Call mom", "--json"))

		require.NoError(t, err)
		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		data := result["data"].(map[string]any)
		assert.Equal(t, "Call mom", data["title"])
		assert.Equal(t, "alice", data["username"])
		assert.Equal(t, false, data["completed"])
	})

	assert.Equal(t, 3, testutil.CountRows(t, db, "tasks"))
}

func TestAddTask_Negative(t *testing.T) {
	_, app := clitest.SetupCLITest(t)
	clitest.RegisterTestUser(t, app, "alice", "pw1")

	t.Run("wrong password", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, AddCmd(),
			[]string{"--user", "alice", "--password", "nope", "--title", "x"})

		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrAuthenticationFailed)
		assert.Equal(t, cli.ExitAuth, cli.ExitCode(err))
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, AddCmd(),
			append(creds("alice"), "--title", "   "))

		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})

	t.Run("title too long", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, AddCmd(),
			append(creds("alice"), "--title", strings.Repeat("x", models.MaxTitleLength+1)))

		assert.ErrorIs(t, err, models.ErrTitleTooLong)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})

	t.Run("missing title flag", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), creds("alice"))

		assert.Error(t, err)
	})

	// Without a terminal there is nobody to prompt
	t.Run("no password anywhere", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, AddCmd(),
			[]string{"--user", "alice", "--title", "x"})

		assert.ErrorIs(t, err, cli.ErrPasswordRequired)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}

func TestAddTask_PasswordFromEnvironment(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	clitest.RegisterTestUser(t, app, "alice", "pw1")
	t.Setenv(config.EnvPassword, "pw1")

	_, err := clitest.ExecuteCLICommand(t, app, AddCmd(),
		[]string{"--user", "alice", "--title", "from env"})

	require.NoError(t, err)
	assert.Equal(t, 1, testutil.CountRows(t, db, "tasks"))
}

func TestAddTask_RejectOverflow(t *testing.T) {
	cfg := config.Default()
	limit := 1
	cfg.Tasks.Limit = &limit
	cfg.Tasks.Overflow = config.OverflowReject
	db, app := clitest.SetupCLITestWithConfig(t, cfg)
	clitest.RegisterTestUser(t, app, "alice", "pw1")
	clitest.CreateTestTask(t, db, "alice", "only one")

	_, err := clitest.ExecuteCLICommand(t, app, AddCmd(),
		append(creds("alice"), "--title", "one too many"))

	assert.ErrorIs(t, err, models.ErrTaskLimitReached)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Equal(t, 1, testutil.CountRows(t, db, "tasks"))
}

func TestListTasks(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	clitest.RegisterTestUser(t, app, "alice", "pw1")
	clitest.RegisterTestUser(t, app, "bob", "pw1")

	first := clitest.CreateTestTask(t, db, "alice", "first")
	second := clitest.CreateTestTask(t, db, "alice", "second")
	clitest.CreateTestTask(t, db, "bob", "not alice's")
	testutil.CompleteTestTask(t, db, second)

	t.Run("human output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), creds("alice"))

		require.NoError(t, err)
		assert.Contains(t, output, "2 tasks, 1 completed, 1 pending")
		assert.Contains(t, output, fmt.Sprintf("[ ] %d. first", first))
		assert.Contains(t, output, fmt.Sprintf("[✓] %d. second", second))
		assert.NotContains(t, output, "not alice's")
		assert.Less(t, strings.Index(output, "first"), strings.Index(output, "second"), "insertion order")
	})

	t.Run("quiet mode", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), append(creds("alice"), "--quiet"))

		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%d\n%d\n", first, second), output)
	})

	t.Run("json output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), append(creds("alice"), "--json"))

		require.NoError(t, err)
		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		assert.Len(t, result["tasks"], 2)
		assert.Equal(t, float64(2), result["total"])
		assert.Equal(t, float64(1), result["completed"])
		assert.Equal(t, false, result["truncated"])
	})

	t.Run("no tasks", func(t *testing.T) {
		clitest.RegisterTestUser(t, app, "carol", "pw1")
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), creds("carol"))

		require.NoError(t, err)
		assert.Contains(t, output, "No tasks found")
	})
}

func TestListTasks_Truncated(t *testing.T) {
	cfg := config.Default()
	limit := 2
	cfg.Tasks.Limit = &limit
	db, app := clitest.SetupCLITestWithConfig(t, cfg)
	clitest.RegisterTestUser(t, app, "alice", "pw1")
	for i := 1; i <= 3; i++ {
		clitest.CreateTestTask(t, db, "alice", fmt.Sprintf("task %d", i))
	}

	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), creds("alice"))

	require.NoError(t, err)
	assert.Contains(t, output, "task 2")
	assert.NotContains(t, output, "task 3")
	assert.Contains(t, output, "Showing the first 2 of 3 tasks")
}

func TestDoneTask(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	clitest.RegisterTestUser(t, app, "alice", "pw1")
	taskID := clitest.CreateTestTask(t, db, "alice", "Task to Complete")

	t.Run("mark task as done", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, DoneCmd(),
			append(creds("alice"), fmt.Sprintf("%d", taskID)))

		require.NoError(t, err)
		assert.Contains(t, output, fmt.Sprintf("Task %d completed", taskID))

		task, err := app.Repo().GetTaskByID(context.Background(), taskID)
		require.NoError(t, err)
		assert.True(t, task.Completed)
	})

	t.Run("completing again is idempotent", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, DoneCmd(),
			append(creds("alice"), fmt.Sprintf("%d", taskID), "--json"))

		require.NoError(t, err)
		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["already_completed"])
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, DoneCmd(), append(creds("alice"), "9999"))

		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, DoneCmd(), append(creds("alice"), "abc"))

		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("json error output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, DoneCmd(),
			append(creds("alice"), "9999", "--json"))

		require.Error(t, err)
		result := testutil.ParseJSON(t, output)
		assert.Equal(t, false, result["success"])
		errData := result["error"].(map[string]any)
		assert.Equal(t, "TASK_NOT_FOUND", errData["code"])
	})
}

// TestDoneTask_OwnerCheck ensures another user's task looks missing once the
// owner check is on.
// Security value: task ids cannot be discovered across accounts.
func TestDoneTask_OwnerCheck(t *testing.T) {
	cfg := config.Default()
	cfg.Tasks.OwnerCheck = config.OwnerCheckEnabled
	db, app := clitest.SetupCLITestWithConfig(t, cfg)
	clitest.RegisterTestUser(t, app, "bob", "pw1")
	taskID := clitest.CreateTestTask(t, db, "alice", "alice's task")

	_, err := clitest.ExecuteCLICommand(t, app, DoneCmd(),
		append(creds("bob"), fmt.Sprintf("%d", taskID)))

	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	task, err := app.Repo().GetTaskByID(context.Background(), taskID)
	require.NoError(t, err)
	assert.False(t, task.Completed)
}

func TestDeleteTask(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	clitest.RegisterTestUser(t, app, "alice", "pw1")

	t.Run("delete without prompt", func(t *testing.T) {
		taskID := clitest.CreateTestTask(t, db, "alice", "Task to Delete")

		output, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(),
			append(creds("alice"), fmt.Sprintf("%d", taskID)))

		require.NoError(t, err)
		assert.Contains(t, output, fmt.Sprintf("Task %d deleted successfully", taskID))
		assert.Equal(t, 0, testutil.CountRows(t, db, "tasks"))
	})

	t.Run("quiet mode is silent", func(t *testing.T) {
		taskID := clitest.CreateTestTask(t, db, "alice", "Quiet delete")

		output, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(),
			append(creds("alice"), fmt.Sprintf("%d", taskID), "--quiet"))

		require.NoError(t, err)
		assert.Empty(t, output)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), append(creds("alice"), "4242"))

		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("zero id", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), append(creds("alice"), "0"))

		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}

func TestDoneTask_AlreadyCompletedNotice(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	clitest.RegisterTestUser(t, app, "alice", "pw1")
	taskID := clitest.CreateTestTask(t, db, "alice", "finished")
	testutil.CompleteTestTask(t, db, taskID)

	var err error
	stderr := testutil.CaptureStderr(t, func() {
		_, err = clitest.ExecuteCLICommand(t, app, DoneCmd(),
			append(creds("alice"), fmt.Sprintf("%d", taskID)))
	})

	require.NoError(t, err)
	assert.Contains(t, stderr, fmt.Sprintf("Task %d was already completed", taskID))
}

func TestAddTask_HumanErrorOnStderr(t *testing.T) {
	_, app := clitest.SetupCLITest(t)
	clitest.RegisterTestUser(t, app, "alice", "pw1")

	var err error
	stderr := testutil.CaptureStderr(t, func() {
		_, err = clitest.ExecuteCLICommand(t, app, AddCmd(),
			[]string{"--user", "alice", "--password", "nope", "--title", "x"})
	})

	require.Error(t, err)
	assert.Contains(t, stderr, "Error: invalid username or password")
	assert.Contains(t, stderr, "Suggestion")
}
