package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/database"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/services/auth"
	"github.com/thenoetrevino/taskdesk/internal/services/task"
	"github.com/thenoetrevino/taskdesk/internal/testutil"
	"golang.org/x/crypto/bcrypt"
)

func TestNew(t *testing.T) {
	repo := database.NewRepository(testutil.SetupTestDB(t))

	app := New(repo, nil)

	require.NotNil(t, app)
	assert.NotNil(t, app.AuthService)
	assert.NotNil(t, app.TaskService)
	assert.NotNil(t, app.Config())
	assert.Same(t, repo, app.Repo())
	assert.NoError(t, app.Close(), "Close without an owned connection is a no-op")
}

func TestNew_WiresServices(t *testing.T) {
	repo := database.NewRepository(testutil.SetupTestDB(t))
	app := New(repo, config.Default(), WithHasher(auth.NewBcryptHasher(bcrypt.MinCost)))
	ctx := context.Background()

	require.NoError(t, app.AuthService.Register(ctx, "alice", "pw1"))
	user, err := app.AuthService.Login(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = app.TaskService.AddTask(ctx, user.Username, "Buy milk")
	require.NoError(t, err)
	tasks, err := app.TaskService.FetchTasks(ctx, user.Username)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestNew_SHA256Hasher(t *testing.T) {
	repo := database.NewRepository(testutil.SetupTestDB(t))
	cfg := config.Default()
	cfg.Auth.Hasher = config.HasherSHA256
	app := New(repo, cfg)
	ctx := context.Background()

	require.NoError(t, app.AuthService.Register(ctx, "alice", "pw1"))
	user, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, auth.Hash("pw1"), user.PasswordHash)
}

func TestTaskOptions(t *testing.T) {
	cfg := config.Default()
	opts := TaskOptions(cfg.Tasks, nil)
	assert.Equal(t, models.DefaultTaskLimit, opts.Limit)
	assert.Equal(t, task.OverflowTruncate, opts.Overflow)
	assert.False(t, opts.OwnerCheck)

	zero := 0
	cfg.Tasks.Limit = &zero
	cfg.Tasks.Overflow = config.OverflowReject
	cfg.Tasks.OwnerCheck = config.OwnerCheckEnabled
	opts = TaskOptions(cfg.Tasks, nil)
	assert.Equal(t, 0, opts.Limit)
	assert.Equal(t, task.OverflowReject, opts.Overflow)
	assert.True(t, opts.OwnerCheck)
}

func TestOpen_OwnsConnection(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "nested", "users.db")
	ctx := context.Background()

	app, err := Open(ctx, cfg, WithHasher(auth.DigestHasher{}))
	require.NoError(t, err)
	require.NoError(t, app.AuthService.Register(ctx, "alice", "pw1"))
	require.NoError(t, app.Close())

	reopened, err := Open(ctx, cfg, WithHasher(auth.DigestHasher{}))
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	_, err = reopened.AuthService.Login(ctx, "alice", "pw1")
	assert.NoError(t, err, "accounts must survive a restart")
}

func TestDBContext_UsesConfiguredTimeout(t *testing.T) {
	cfg := config.Default()
	cfg.Database.TimeoutSeconds = 2
	app := New(nil, cfg)

	ctx, cancel := app.DBContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, time.Second)
}
