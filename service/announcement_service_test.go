package service

import (
	"context"
	"testing"

	"github.com/contempsico/portal-be/repository/memory"
	"github.com/contempsico/portal-be/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementServiceListOrderAndVisibility(t *testing.T) {
	store := memory.NewStore(0)
	svc := NewAnnouncementService(store, NopNotifier{})
	ctx := context.Background()

	older, err := svc.CreateAnnouncement(ctx, manager, &types.CreateAnnouncementRequest{
		Title:      "Old notice",
		Visibility: []string{types.PROFILE_COLLABORATOR},
	})
	require.NoError(t, err)
	older.Date = 100
	require.NoError(t, svc.UpdateAnnouncement(ctx, older))

	newer, err := svc.CreateAnnouncement(ctx, manager, &types.CreateAnnouncementRequest{
		Title:      "New notice",
		Visibility: []string{types.PROFILE_PSYCHOLOGIST},
	})
	require.NoError(t, err)
	newer.Date = 200
	require.NoError(t, svc.UpdateAnnouncement(ctx, newer))

	assert.Equal(t, "Maria Manager", newer.Author, "author comes from the session, not the request")

	all, err := svc.ListAnnouncements(ctx, manager)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "New notice", all[0].Title, "newest first")

	forCollab, err := svc.ListAnnouncements(ctx, collaborator)
	require.NoError(t, err)
	require.Len(t, forCollab, 1)
	assert.Equal(t, "Old notice", forCollab[0].Title)
}

func TestAnnouncementServiceDelete(t *testing.T) {
	store := memory.NewStore(0)
	svc := NewAnnouncementService(store, NopNotifier{})
	ctx := context.Background()

	announcement, err := svc.CreateAnnouncement(ctx, manager, &types.CreateAnnouncementRequest{Title: "Gone soon"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAnnouncement(ctx, announcement.ID))
	assert.ErrorIs(t, svc.DeleteAnnouncement(ctx, announcement.ID), types.ErrNotFound)
}
