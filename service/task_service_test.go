package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/contempsico/portal-be/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRepoDown = errors.New("repository unavailable")

// stubTaskRepo is an in-memory TaskRepo whose mutations can be forced to
// fail, to exercise the rollback path.
type stubTaskRepo struct {
	tasks      map[string]*types.Task
	failUpdate bool
}

func newStubTaskRepo(tasks ...*types.Task) *stubTaskRepo {
	repo := &stubTaskRepo{tasks: make(map[string]*types.Task)}
	for _, task := range tasks {
		repo.tasks[task.ID] = task
	}
	return repo
}

func (r *stubTaskRepo) CreateTask(ctx context.Context, task *types.Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *stubTaskRepo) GetTask(ctx context.Context, id string) (*types.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return task, nil
}

func (r *stubTaskRepo) ListTasks(ctx context.Context) ([]*types.Task, error) {
	tasks := make([]*types.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *stubTaskRepo) UpdateTask(ctx context.Context, task *types.Task) error {
	if r.failUpdate {
		return errRepoDown
	}
	r.tasks[task.ID] = task
	return nil
}

func (r *stubTaskRepo) DeleteTask(ctx context.Context, id string) error {
	delete(r.tasks, id)
	return nil
}

var (
	manager      = &types.User{ID: "u-mgmt", Name: "Maria Manager", Profile: types.PROFILE_MANAGEMENT}
	collaborator = &types.User{ID: "u-collab", Name: "John Collaborator", Profile: types.PROFILE_COLLABORATOR}
	psychologist = &types.User{ID: "u-psi", Name: "Dr. Ana Silva", Profile: types.PROFILE_PSYCHOLOGIST}
)

func newTestTaskService(repo *stubTaskRepo, now time.Time) *taskService {
	svc := NewTaskService(repo, NopNotifier{}).(*taskService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCreateTaskDefaults(t *testing.T) {
	now := time.Date(2023, 10, 25, 12, 0, 0, 0, time.UTC)
	svc := newTestTaskService(newStubTaskRepo(), now)

	task, err := svc.CreateTask(context.Background(), collaborator, &types.CreateTaskRequest{
		Title:       "Check appointment",
		Type:        types.TASK_TYPE_ROUTINE,
		AssignedTo:  []string{"u-psi"},
		Subtasks:    []string{"first step", "second step"},
		PatientName: "should be dropped",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, types.TASK_STATUS_PENDING, task.Status)
	assert.Equal(t, types.TASK_PRIORITY_MEDIUM, task.Priority)
	assert.Equal(t, "John Collaborator", task.Requester)
	assert.Equal(t, now.Unix(), task.CreationDate)
	assert.Empty(t, task.PatientName, "patient name only applies to patient document tasks")

	require.Len(t, task.Subtasks, 2)
	assert.NotEmpty(t, task.Subtasks[0].ID)
	assert.Equal(t, "first step", task.Subtasks[0].Title)
	assert.False(t, task.Subtasks[0].Completed)
}

func TestCreateTaskPatientName(t *testing.T) {
	svc := newTestTaskService(newStubTaskRepo(), time.Now())

	task, err := svc.CreateTask(context.Background(), psychologist, &types.CreateTaskRequest{
		Title:       "Send records",
		Type:        types.TASK_TYPE_PATIENT_DOCUMENTS,
		PatientName: "Patient X",
	})
	require.NoError(t, err)
	assert.Equal(t, "Patient X", task.PatientName)
}

func TestCreateTaskValidation(t *testing.T) {
	svc := newTestTaskService(newStubTaskRepo(), time.Now())
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, collaborator, &types.CreateTaskRequest{Title: "x", Type: "misc"})
	assert.ErrorIs(t, err, types.ErrInvalidType)

	_, err = svc.CreateTask(ctx, collaborator, &types.CreateTaskRequest{
		Title: "x", Type: types.TASK_TYPE_ROUTINE, Priority: "urgent",
	})
	assert.ErrorIs(t, err, types.ErrInvalidPriority)

	_, err = svc.CreateTask(ctx, collaborator, &types.CreateTaskRequest{
		Title: "x", Type: types.TASK_TYPE_ROUTINE, StartDate: "2023-10-05", EndDate: "2023-10-01",
	})
	assert.ErrorIs(t, err, types.ErrEndBeforeStart)

	_, err = svc.CreateTask(ctx, &types.User{ID: "x", Profile: "intern"}, &types.CreateTaskRequest{
		Title: "x", Type: types.TASK_TYPE_ROUTINE,
	})
	assert.ErrorIs(t, err, types.ErrForbidden)
}

func TestChangeStatusConclusionDate(t *testing.T) {
	now := time.Date(2023, 10, 26, 9, 0, 0, 0, time.UTC)
	repo := newStubTaskRepo(&types.Task{
		ID:         "task-1",
		Status:     types.TASK_STATUS_IN_PROGRESS,
		AssignedTo: []string{collaborator.ID},
	})
	svc := newTestTaskService(repo, now)
	ctx := context.Background()

	// Completing stamps the conclusion date.
	task, err := svc.ChangeStatus(ctx, collaborator, "task-1", types.TASK_STATUS_COMPLETED)
	require.NoError(t, err)
	assert.Equal(t, now.Unix(), task.ConclusionDate)

	// Completing again does not restamp.
	later := now.Add(2 * time.Hour)
	svc.now = func() time.Time { return later }
	task, err = svc.ChangeStatus(ctx, collaborator, "task-1", types.TASK_STATUS_COMPLETED)
	require.NoError(t, err)
	assert.Equal(t, now.Unix(), task.ConclusionDate)

	// Archiving keeps the conclusion date.
	task, err = svc.ChangeStatus(ctx, collaborator, "task-1", types.TASK_STATUS_ARCHIVED)
	require.NoError(t, err)
	assert.Equal(t, now.Unix(), task.ConclusionDate)

	// Reopening clears it.
	task, err = svc.ChangeStatus(ctx, collaborator, "task-1", types.TASK_STATUS_IN_PROGRESS)
	require.NoError(t, err)
	assert.Zero(t, task.ConclusionDate)
}

func TestChangeStatusValidation(t *testing.T) {
	repo := newStubTaskRepo(&types.Task{ID: "task-1", Status: types.TASK_STATUS_PENDING, AssignedTo: []string{collaborator.ID}})
	svc := newTestTaskService(repo, time.Now())
	ctx := context.Background()

	_, err := svc.ChangeStatus(ctx, collaborator, "task-1", "done")
	assert.ErrorIs(t, err, types.ErrInvalidStatus)

	_, err = svc.ChangeStatus(ctx, psychologist, "task-1", types.TASK_STATUS_COMPLETED)
	assert.ErrorIs(t, err, types.ErrForbidden, "only assignees and management may move a task")

	_, err = svc.ChangeStatus(ctx, manager, "missing", types.TASK_STATUS_COMPLETED)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestChangeStatusRollback(t *testing.T) {
	original := &types.Task{
		ID:         "task-1",
		Title:      "Original title",
		Status:     types.TASK_STATUS_IN_PROGRESS,
		AssignedTo: []string{collaborator.ID},
		Subtasks:   []types.Subtask{{ID: "sub-1", Title: "step"}},
	}
	repo := newStubTaskRepo(original)
	svc := newTestTaskService(repo, time.Now())
	ctx := context.Background()

	// Prime the cache, then knock the repository over.
	_, err := svc.GetTask(ctx, collaborator, "task-1")
	require.NoError(t, err)
	repo.failUpdate = true

	_, err = svc.ChangeStatus(ctx, collaborator, "task-1", types.TASK_STATUS_COMPLETED)
	assert.ErrorIs(t, err, errRepoDown)

	// The cache must hold the exact pre-change task again.
	cached, err := svc.cached(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, original, cached)
}

func TestUpdateTaskRollback(t *testing.T) {
	original := &types.Task{
		ID:         "task-1",
		Title:      "Original title",
		Status:     types.TASK_STATUS_PENDING,
		AssignedTo: []string{collaborator.ID},
	}
	repo := newStubTaskRepo(original)
	svc := newTestTaskService(repo, time.Now())
	ctx := context.Background()

	_, err := svc.GetTask(ctx, collaborator, "task-1")
	require.NoError(t, err)
	repo.failUpdate = true

	_, err = svc.UpdateTask(ctx, collaborator, "task-1", &types.UpdateTaskRequest{Title: "New title"})
	assert.ErrorIs(t, err, errRepoDown)

	cached, err := svc.cached(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, "Original title", cached.Title)
}

func TestToggleSubtask(t *testing.T) {
	repo := newStubTaskRepo(&types.Task{
		ID:         "task-1",
		Status:     types.TASK_STATUS_IN_PROGRESS,
		AssignedTo: []string{collaborator.ID},
		Subtasks: []types.Subtask{
			{ID: "sub-1", Title: "first"},
			{ID: "sub-2", Title: "second", Completed: true},
		},
	})
	svc := newTestTaskService(repo, time.Now())
	ctx := context.Background()

	task, err := svc.ToggleSubtask(ctx, collaborator, "task-1", "sub-1")
	require.NoError(t, err)
	assert.True(t, task.Subtasks[0].Completed)
	assert.True(t, task.Subtasks[1].Completed)
	assert.Equal(t, types.TASK_STATUS_IN_PROGRESS, task.Status, "toggling a subtask never moves the parent")

	task, err = svc.ToggleSubtask(ctx, collaborator, "task-1", "sub-2")
	require.NoError(t, err)
	assert.False(t, task.Subtasks[1].Completed)

	_, err = svc.ToggleSubtask(ctx, collaborator, "task-1", "missing")
	assert.ErrorIs(t, err, types.ErrSubtaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	repo := newStubTaskRepo(&types.Task{ID: "task-1", AssignedTo: []string{collaborator.ID}})
	svc := newTestTaskService(repo, time.Now())
	ctx := context.Background()

	err := svc.DeleteTask(ctx, collaborator, "task-1")
	assert.ErrorIs(t, err, types.ErrForbidden)

	require.NoError(t, svc.DeleteTask(ctx, manager, "task-1"))
	_, err = svc.GetTask(ctx, manager, "task-1")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestListTasksVisibilityAndFlags(t *testing.T) {
	now := time.Date(2023, 10, 25, 12, 0, 0, 0, time.UTC)
	repo := newStubTaskRepo(
		&types.Task{ID: "t1", Status: types.TASK_STATUS_PENDING, EndDate: "2023-10-24", AssignedTo: []string{collaborator.ID}, CreationDate: 100},
		&types.Task{ID: "t2", Status: types.TASK_STATUS_COMPLETED, EndDate: "2023-10-20", ConclusionDate: now.Unix(), AssignedTo: []string{psychologist.ID}, CreationDate: 200},
	)
	svc := newTestTaskService(repo, now)
	ctx := context.Background()

	all, err := svc.ListTasks(ctx, manager)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "t2", all[0].Task.ID, "newest first")
	assert.False(t, all[0].Overdue)
	assert.True(t, all[0].CompletedLate)
	assert.True(t, all[1].Overdue)

	mine, err := svc.ListTasks(ctx, collaborator)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "t1", mine[0].Task.ID)
}

func TestPendingCount(t *testing.T) {
	repo := newStubTaskRepo(
		&types.Task{ID: "t1", Status: types.TASK_STATUS_PENDING, AssignedTo: []string{collaborator.ID}},
		&types.Task{ID: "t2", Status: types.TASK_STATUS_PENDING, AssignedTo: []string{psychologist.ID}},
		&types.Task{ID: "t3", Status: types.TASK_STATUS_IN_PROGRESS, AssignedTo: []string{collaborator.ID}},
	)
	svc := newTestTaskService(repo, time.Now())
	ctx := context.Background()

	count, err := svc.PendingCount(ctx, collaborator)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = svc.PendingCount(ctx, manager)
	require.NoError(t, err)
	assert.Zero(t, count)
}
