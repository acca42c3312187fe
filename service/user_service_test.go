package service

import (
	"context"
	"testing"

	"github.com/contempsico/portal-be/repository/memory"
	"github.com/contempsico/portal-be/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceAuthenticate(t *testing.T) {
	store := memory.NewStore(0)
	svc := NewUserService(store)
	ctx := context.Background()

	require.NoError(t, svc.CreateUser(ctx, &types.User{
		Name:     "John Collaborator",
		Email:    "collab@contempsico.com",
		Password: "secret",
		Profile:  types.PROFILE_COLLABORATOR,
	}))

	user, err := svc.Authenticate(ctx, "collab@contempsico.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "John Collaborator", user.Name)
	assert.NotEqual(t, "secret", user.Password, "stored password must be hashed")

	_, err = svc.Authenticate(ctx, "collab@contempsico.com", "wrong")
	assert.ErrorIs(t, err, types.ErrInvalidCredentials)

	// A missing account reads the same as a bad password.
	_, err = svc.Authenticate(ctx, "nobody@contempsico.com", "secret")
	assert.ErrorIs(t, err, types.ErrInvalidCredentials)
}

func TestUserServiceCreateUser(t *testing.T) {
	store := memory.NewStore(0)
	svc := NewUserService(store)
	ctx := context.Background()

	user := &types.User{Name: "Dr. Ana Silva", Email: "ana@contempsico.com", Password: "secret", Profile: types.PROFILE_PSYCHOLOGIST}
	require.NoError(t, svc.CreateUser(ctx, user))
	assert.NotEmpty(t, user.ID)
	assert.NotZero(t, user.CreateAt)

	err := svc.CreateUser(ctx, &types.User{Name: "X", Email: "x@contempsico.com", Password: "p", Profile: "intern"})
	assert.ErrorIs(t, err, types.ErrForbidden)

	err = svc.CreateUser(ctx, &types.User{Name: "Dup", Email: "ana@contempsico.com", Password: "p", Profile: types.PROFILE_COLLABORATOR})
	assert.ErrorIs(t, err, types.ErrEmailTaken)
}

func TestUserServiceUpdateKeepsProfile(t *testing.T) {
	store := memory.NewStore(0)
	svc := NewUserService(store)
	ctx := context.Background()

	user := &types.User{Name: "John", Email: "john@contempsico.com", Password: "secret", Profile: types.PROFILE_COLLABORATOR}
	require.NoError(t, svc.CreateUser(ctx, user))

	err := svc.UpdateUser(ctx, user.ID, &types.User{Name: "John Renamed", Profile: types.PROFILE_MANAGEMENT})
	require.NoError(t, err)

	updated, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Renamed", updated.Name)
	assert.Equal(t, types.PROFILE_COLLABORATOR, updated.Profile, "profile is immutable through updates")

	err = svc.UpdateUser(ctx, "missing", &types.User{Name: "X"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}
