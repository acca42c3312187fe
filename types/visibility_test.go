package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterVisible(t *testing.T) {
	board := []Announcement{
		{ID: "a", Visibility: []string{PROFILE_COLLABORATOR, PROFILE_PSYCHOLOGIST}},
		{ID: "b", Visibility: []string{PROFILE_PSYCHOLOGIST}},
		{ID: "c", Visibility: []string{PROFILE_COLLABORATOR}},
	}

	management := &User{ID: "m", Profile: PROFILE_MANAGEMENT}
	collaborator := &User{ID: "c", Profile: PROFILE_COLLABORATOR}
	psychologist := &User{ID: "p", Profile: PROFILE_PSYCHOLOGIST}

	assert.Len(t, FilterVisible(board, management), 3, "management bypasses visibility sets")

	forCollab := FilterVisible(board, collaborator)
	assert.Len(t, forCollab, 2)
	assert.Equal(t, "a", forCollab[0].ID)
	assert.Equal(t, "c", forCollab[1].ID)

	forPsi := FilterVisible(board, psychologist)
	assert.Len(t, forPsi, 2)
	assert.Equal(t, "a", forPsi[0].ID)
	assert.Equal(t, "b", forPsi[1].ID)

	assert.Nil(t, FilterVisible(board, nil))
	assert.Empty(t, FilterVisible([]Announcement{}, collaborator))
}

func TestFilterVisibleEmptySet(t *testing.T) {
	// An item with an empty visibility set is hidden from everyone except
	// management.
	board := []Announcement{{ID: "a"}}
	assert.Empty(t, FilterVisible(board, &User{Profile: PROFILE_COLLABORATOR}))
	assert.Len(t, FilterVisible(board, &User{Profile: PROFILE_MANAGEMENT}), 1)
}

func TestFilterAssignedTasks(t *testing.T) {
	tasks := []*Task{
		{ID: "t1", AssignedTo: []string{"u1"}},
		{ID: "t2", AssignedTo: []string{"u2"}},
		{ID: "t3", AssignedTo: []string{"u1", "u2"}},
	}

	management := &User{ID: "m", Profile: PROFILE_MANAGEMENT}
	assigned := &User{ID: "u1", Profile: PROFILE_COLLABORATOR}
	stranger := &User{ID: "u9", Profile: PROFILE_PSYCHOLOGIST}

	assert.Len(t, FilterAssignedTasks(tasks, management), 3)

	mine := FilterAssignedTasks(tasks, assigned)
	assert.Len(t, mine, 2)
	assert.Equal(t, "t1", mine[0].ID)
	assert.Equal(t, "t3", mine[1].ID)

	assert.Empty(t, FilterAssignedTasks(tasks, stranger))
	assert.Nil(t, FilterAssignedTasks(tasks, nil))
}
