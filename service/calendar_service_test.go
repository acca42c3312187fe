package service

import (
	"context"
	"testing"

	"github.com/contempsico/portal-be/repository/memory"
	"github.com/contempsico/portal-be/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarServiceCreateAndOrder(t *testing.T) {
	store := memory.NewStore(0)
	svc := NewCalendarService(store)
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, &types.CreateEventRequest{
		Date:   "2023-12-25",
		Title:  "Christmas",
		Status: types.EVENT_STATUS_CLOSED,
	})
	require.NoError(t, err)

	_, err = svc.CreateEvent(ctx, &types.CreateEventRequest{
		Date:      "2023-11-02",
		Title:     "Day of the Dead bridge",
		Status:    types.EVENT_STATUS_CLOSED,
		IsHoliday: true,
	})
	require.NoError(t, err)

	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "2023-11-02", events[0].Date, "ordered by day")
	assert.True(t, events[0].IsHoliday)
}

func TestCalendarServiceValidation(t *testing.T) {
	store := memory.NewStore(0)
	svc := NewCalendarService(store)
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, &types.CreateEventRequest{Date: "25/12/2023", Title: "x", Status: types.EVENT_STATUS_CLOSED})
	assert.ErrorIs(t, err, types.ErrInvalidDate)

	_, err = svc.CreateEvent(ctx, &types.CreateEventRequest{Date: "2023-12-25", Title: "x", Status: "maybe"})
	assert.ErrorIs(t, err, types.ErrInvalidStatus)

	err = svc.UpdateEvent(ctx, &types.CalendarEvent{ID: "evt", Date: "bad"})
	assert.ErrorIs(t, err, types.ErrInvalidDate)
}

func TestCalendarServiceUpdateStatusValidation(t *testing.T) {
	store := memory.NewStore(0)
	svc := NewCalendarService(store)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, &types.CreateEventRequest{
		Date:   "2023-12-25",
		Title:  "Christmas",
		Status: types.EVENT_STATUS_CLOSED,
	})
	require.NoError(t, err)

	// Updates reject status values creation would reject.
	event.Status = "maybe"
	assert.ErrorIs(t, svc.UpdateEvent(ctx, event), types.ErrInvalidStatus)

	event.Status = types.EVENT_STATUS_NORMAL
	require.NoError(t, svc.UpdateEvent(ctx, event))

	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, types.EVENT_STATUS_NORMAL, events[0].Status)
}
