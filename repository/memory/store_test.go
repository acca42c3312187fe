package memory

import (
	"context"
	"testing"
	"time"

	"github.com/contempsico/portal-be/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreTaskIsolation(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	task := &types.Task{
		ID:         "task-1",
		Title:      "original",
		AssignedTo: []string{"u1"},
		Subtasks:   []types.Subtask{{ID: "sub-1", Title: "step"}},
	}
	require.NoError(t, store.CreateTask(ctx, task))

	// Mutating the caller's struct after the write must not leak in.
	task.Title = "mutated"
	task.AssignedTo[0] = "u2"
	task.Subtasks[0].Completed = true

	stored, err := store.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, "original", stored.Title)
	assert.Equal(t, "u1", stored.AssignedTo[0])
	assert.False(t, stored.Subtasks[0].Completed)

	// And mutating a read result must not leak back.
	stored.Title = "also mutated"
	again, err := store.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, "original", again.Title)
}

func TestStoreTaskListOrder(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	require.NoError(t, store.CreateTask(ctx, &types.Task{ID: "first"}))
	require.NoError(t, store.CreateTask(ctx, &types.Task{ID: "second"}))

	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "second", tasks[0].ID, "newest first")
}

func TestStoreUpdateMissing(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	assert.ErrorIs(t, store.UpdateTask(ctx, &types.Task{ID: "ghost"}), types.ErrNotFound)
	assert.ErrorIs(t, store.DeleteTask(ctx, "ghost"), types.ErrNotFound)
	assert.ErrorIs(t, store.UpdateAnnouncement(ctx, &types.Announcement{ID: "ghost"}), types.ErrNotFound)
	assert.ErrorIs(t, store.DeleteEvent(ctx, "ghost"), types.ErrNotFound)
	_, err := store.GetUser(ctx, "ghost")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestStorePaginateUsers(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	for _, id := range []string{"u1", "u2", "u3", "u4", "u5"} {
		require.NoError(t, store.CreateUser(ctx, &types.User{ID: id, Email: id + "@contempsico.com"}))
	}

	page, total, err := store.PaginateUsers(ctx, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "u1", page[0].ID)

	page, _, err = store.PaginateUsers(ctx, 3, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "u5", page[0].ID)

	page, _, err = store.PaginateUsers(ctx, 9, 2)
	require.NoError(t, err)
	assert.Empty(t, page)

	// Out-of-range values fall back to the first page instead of slicing
	// with a negative offset.
	page, total, err = store.PaginateUsers(ctx, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page, 5)
	assert.Equal(t, "u1", page[0].ID)

	page, _, err = store.PaginateUsers(ctx, -3, -10)
	require.NoError(t, err)
	require.Len(t, page, 5)
	assert.Equal(t, "u1", page[0].ID)
}

func TestStoreLatencyHonorsContext(t *testing.T) {
	store := NewStore(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.CreateTask(ctx, &types.Task{ID: "task-1"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStoreSeed(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx))

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)

	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 4)

	_, err = store.GetUserByEmail(ctx, "management@contempsico.com")
	require.NoError(t, err)

	psychologists, err := store.ListPsychologists(ctx)
	require.NoError(t, err)
	assert.Len(t, psychologists, 2)

	// Seeding twice would collide on user emails.
	assert.ErrorIs(t, store.Seed(ctx), types.ErrEmailTaken)
}
