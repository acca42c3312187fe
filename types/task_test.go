package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskOverdue(t *testing.T) {
	now := time.Date(2023, 10, 25, 15, 30, 0, 0, time.UTC)

	pastDue := Task{Status: TASK_STATUS_PENDING, EndDate: "2023-10-24"}
	assert.True(t, pastDue.Overdue(now))

	dueToday := Task{Status: TASK_STATUS_PENDING, EndDate: "2023-10-25"}
	assert.False(t, dueToday.Overdue(now))

	dueTomorrow := Task{Status: TASK_STATUS_IN_PROGRESS, EndDate: "2023-10-26"}
	assert.False(t, dueTomorrow.Overdue(now))

	completed := Task{Status: TASK_STATUS_COMPLETED, EndDate: "2023-10-24"}
	assert.False(t, completed.Overdue(now), "completed tasks are never overdue")

	archived := Task{Status: TASK_STATUS_ARCHIVED, EndDate: "2023-10-24"}
	assert.True(t, archived.Overdue(now), "archiving does not clear the overdue flag")

	noEndDate := Task{Status: TASK_STATUS_PENDING}
	assert.False(t, noEndDate.Overdue(now))

	badDate := Task{Status: TASK_STATUS_PENDING, EndDate: "24/10/2023"}
	assert.False(t, badDate.Overdue(now))
}

func TestTaskCompletedLate(t *testing.T) {
	late := Task{
		Status:         TASK_STATUS_COMPLETED,
		EndDate:        "2023-10-24",
		ConclusionDate: time.Date(2023, 10, 26, 10, 0, 0, 0, time.UTC).Unix(),
	}
	assert.True(t, late.CompletedLate())

	onTime := Task{
		Status:         TASK_STATUS_COMPLETED,
		EndDate:        "2023-10-24",
		ConclusionDate: time.Date(2023, 10, 23, 10, 0, 0, 0, time.UTC).Unix(),
	}
	assert.False(t, onTime.CompletedLate())

	notCompleted := Task{
		Status:         TASK_STATUS_IN_PROGRESS,
		EndDate:        "2023-10-24",
		ConclusionDate: time.Date(2023, 10, 26, 10, 0, 0, 0, time.UTC).Unix(),
	}
	assert.False(t, notCompleted.CompletedLate())

	noConclusion := Task{Status: TASK_STATUS_COMPLETED, EndDate: "2023-10-24"}
	assert.False(t, noConclusion.CompletedLate())

	noEndDate := Task{Status: TASK_STATUS_COMPLETED, ConclusionDate: 1}
	assert.False(t, noEndDate.CompletedLate())
}

func TestTaskValidateDates(t *testing.T) {
	assert.NoError(t, Task{StartDate: "2023-10-01", EndDate: "2023-10-05"}.ValidateDates())
	assert.NoError(t, Task{StartDate: "2023-10-01", EndDate: "2023-10-01"}.ValidateDates())
	assert.NoError(t, Task{}.ValidateDates())
	assert.NoError(t, Task{StartDate: "2023-10-01"}.ValidateDates())

	assert.ErrorIs(t, Task{StartDate: "2023-10-05", EndDate: "2023-10-01"}.ValidateDates(), ErrEndBeforeStart)
	assert.ErrorIs(t, Task{StartDate: "bad", EndDate: "2023-10-01"}.ValidateDates(), ErrInvalidDate)
	assert.ErrorIs(t, Task{StartDate: "2023-10-01", EndDate: "bad"}.ValidateDates(), ErrInvalidDate)
}

func TestTaskAssignedToUser(t *testing.T) {
	task := Task{AssignedTo: []string{"user-1", "user-2"}}
	assert.True(t, task.AssignedToUser("user-1"))
	assert.False(t, task.AssignedToUser("user-3"))
	assert.False(t, Task{}.AssignedToUser("user-1"))
}

func TestTaskCompletedSubtasks(t *testing.T) {
	task := Task{Subtasks: []Subtask{
		{ID: "a", Completed: true},
		{ID: "b"},
		{ID: "c", Completed: true},
	}}
	assert.Equal(t, 2, task.CompletedSubtasks())
	assert.Equal(t, 0, Task{}.CompletedSubtasks())
}

func TestValidTaskValues(t *testing.T) {
	assert.True(t, ValidTaskStatus(TASK_STATUS_ARCHIVED))
	assert.False(t, ValidTaskStatus("done"))

	assert.True(t, ValidTaskType(TASK_TYPE_RECURRENT_ERROR))
	assert.False(t, ValidTaskType("misc"))

	assert.True(t, ValidTaskPriority(TASK_PRIORITY_LOW))
	assert.False(t, ValidTaskPriority("urgent"))
}
