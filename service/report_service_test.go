package service

import (
	"context"
	"testing"
	"time"

	"github.com/contempsico/portal-be/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	users []*types.User
}

func (r *stubUserRepo) CreateUser(ctx context.Context, user *types.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *stubUserRepo) GetUser(ctx context.Context, id string) (*types.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, types.ErrNotFound
}

func (r *stubUserRepo) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, types.ErrNotFound
}

func (r *stubUserRepo) ListUsers(ctx context.Context) ([]*types.User, error) {
	return r.users, nil
}

func (r *stubUserRepo) PaginateUsers(ctx context.Context, page, limit int64) ([]*types.User, int64, error) {
	return r.users, int64(len(r.users)), nil
}

func (r *stubUserRepo) UpdateUser(ctx context.Context, user *types.User) error { return nil }
func (r *stubUserRepo) DeleteUser(ctx context.Context, id string) error        { return nil }

func TestProductivityReport(t *testing.T) {
	endDate := "2023-10-20"
	lateConclusion := time.Date(2023, 10, 22, 10, 0, 0, 0, time.UTC).Unix()
	onTimeConclusion := time.Date(2023, 10, 19, 10, 0, 0, 0, time.UTC).Unix()

	taskRepo := newStubTaskRepo(
		&types.Task{ID: "t1", Status: types.TASK_STATUS_COMPLETED, Type: types.TASK_TYPE_ROUTINE, EndDate: endDate, ConclusionDate: lateConclusion, AssignedTo: []string{collaborator.ID}},
		&types.Task{ID: "t2", Status: types.TASK_STATUS_COMPLETED, Type: types.TASK_TYPE_ROUTINE, EndDate: endDate, ConclusionDate: onTimeConclusion, AssignedTo: []string{collaborator.ID}},
		&types.Task{ID: "t3", Status: types.TASK_STATUS_PENDING, Type: types.TASK_TYPE_PROCEDURE_ERROR, AssignedTo: []string{collaborator.ID}},
		&types.Task{ID: "t4", Status: types.TASK_STATUS_IN_PROGRESS, Type: types.TASK_TYPE_RECURRENT_ERROR, AssignedTo: []string{psychologist.ID}},
		// Management-only task: must not appear in any row.
		&types.Task{ID: "t5", Status: types.TASK_STATUS_PENDING, Type: types.TASK_TYPE_ROUTINE, AssignedTo: []string{manager.ID}},
	)
	userRepo := &stubUserRepo{users: []*types.User{manager, collaborator, psychologist}}

	svc := NewReportService(taskRepo, userRepo)
	rows, err := svc.ProductivityReport(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 2, "management never appears in the report")

	byUser := make(map[string]types.ProductivityRow, len(rows))
	for _, row := range rows {
		byUser[row.UserID] = row
	}

	collabRow := byUser[collaborator.ID]
	assert.Equal(t, 3, collabRow.TotalAssigned)
	assert.Equal(t, 2, collabRow.TotalCompleted)
	assert.Equal(t, 1, collabRow.CompletedLate)
	assert.Equal(t, 1, collabRow.ErrorTasks)
	assert.Zero(t, collabRow.RecurrentErrorTasks)

	psiRow := byUser[psychologist.ID]
	assert.Equal(t, 1, psiRow.TotalAssigned)
	assert.Zero(t, psiRow.TotalCompleted)
	assert.Equal(t, 1, psiRow.RecurrentErrorTasks)

	for _, row := range rows {
		assert.LessOrEqual(t, row.TotalCompleted, row.TotalAssigned)
		assert.LessOrEqual(t, row.CompletedLate, row.TotalCompleted)
	}
}
