package utils

import (
	"testing"
	"time"

	"github.com/contempsico/portal-be/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTokenRoundTrip(t *testing.T) {
	user := &types.User{
		ID:      "user-1",
		Name:    "Maria Manager",
		Email:   "management@contempsico.com",
		Profile: types.PROFILE_MANAGEMENT,
	}

	token, err := GenerateUserToken(user, "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseUserToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Profile, claims.Profile)
	assert.Equal(t, user.ID, claims.Subject)
}

func TestParseUserTokenWrongSecret(t *testing.T) {
	token, err := GenerateUserToken(&types.User{ID: "user-1"}, "test-secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseUserToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseUserTokenExpired(t *testing.T) {
	token, err := GenerateUserToken(&types.User{ID: "user-1"}, "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseUserToken(token, "test-secret")
	assert.Error(t, err)
}

func TestParseUserTokenGarbage(t *testing.T) {
	_, err := ParseUserToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
