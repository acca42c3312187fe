package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePermissions(t *testing.T) {
	assert.Equal(t, fullCRUD, ResolvePermissions(PROFILE_MANAGEMENT, MODULE_ANNOUNCEMENTS))
	assert.Equal(t, viewOnly, ResolvePermissions(PROFILE_MANAGEMENT, MODULE_REPORT))

	collabTasks := ResolvePermissions(PROFILE_COLLABORATOR, MODULE_TASKS)
	assert.True(t, collabTasks.CanCreate)
	assert.True(t, collabTasks.CanEdit)
	assert.False(t, collabTasks.CanDelete, "only management deletes tasks")

	assert.Equal(t, fullCRUD, ResolvePermissions(PROFILE_COLLABORATOR, MODULE_PSYCHOLOGISTS))
	assert.Equal(t, viewOnly, ResolvePermissions(PROFILE_COLLABORATOR, MODULE_PRICES))
	assert.False(t, ResolvePermissions(PROFILE_COLLABORATOR, MODULE_REPORT).CanView)

	assert.False(t, ResolvePermissions(PROFILE_PSYCHOLOGIST, MODULE_PRICES).CanView)
	assert.False(t, ResolvePermissions(PROFILE_PSYCHOLOGIST, MODULE_PSYCHOLOGISTS).CanView)
	assert.True(t, ResolvePermissions(PROFILE_PSYCHOLOGIST, MODULE_TASKS).CanCreate)

	assert.Equal(t, Permissions{}, ResolvePermissions("intern", MODULE_TASKS))
	assert.Equal(t, Permissions{}, ResolvePermissions(PROFILE_MANAGEMENT, "unknown"))
}

func TestResolveAllPermissions(t *testing.T) {
	management := ResolveAllPermissions(PROFILE_MANAGEMENT)
	assert.Len(t, management, 9)

	psychologist := ResolveAllPermissions(PROFILE_PSYCHOLOGIST)
	_, hasPrices := psychologist[MODULE_PRICES]
	assert.False(t, hasPrices)
	_, hasReport := psychologist[MODULE_REPORT]
	assert.False(t, hasReport)

	assert.Empty(t, ResolveAllPermissions("intern"))
}
