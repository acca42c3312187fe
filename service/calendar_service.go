package service

import (
	"context"
	"sort"
	"time"

	"github.com/contempsico/portal-be/repository"
	"github.com/contempsico/portal-be/types"
	"github.com/google/uuid"
)

type CalendarService interface {
	ListEvents(ctx context.Context) ([]types.CalendarEvent, error)
	CreateEvent(ctx context.Context, req *types.CreateEventRequest) (*types.CalendarEvent, error)
	UpdateEvent(ctx context.Context, event *types.CalendarEvent) error
	DeleteEvent(ctx context.Context, id string) error
}

type calendarService struct {
	repo repository.EventRepo
}

func NewCalendarService(repo repository.EventRepo) CalendarService {
	return &calendarService{repo: repo}
}

// ListEvents returns every closure/open-day marking, ordered by day. The
// calendar is visible to every profile; only mutation is gated.
func (s *calendarService) ListEvents(ctx context.Context) ([]types.CalendarEvent, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
	return events, nil
}

func (s *calendarService) CreateEvent(ctx context.Context, req *types.CreateEventRequest) (*types.CalendarEvent, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, types.ErrInvalidDate
	}
	if req.Status != types.EVENT_STATUS_CLOSED && req.Status != types.EVENT_STATUS_NORMAL {
		return nil, types.ErrInvalidStatus
	}
	event := &types.CalendarEvent{
		ID:        uuid.NewString(),
		Date:      req.Date,
		Title:     req.Title,
		Status:    req.Status,
		IsHoliday: req.IsHoliday,
	}
	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *calendarService) UpdateEvent(ctx context.Context, event *types.CalendarEvent) error {
	if _, err := time.Parse("2006-01-02", event.Date); err != nil {
		return types.ErrInvalidDate
	}
	if event.Status != types.EVENT_STATUS_CLOSED && event.Status != types.EVENT_STATUS_NORMAL {
		return types.ErrInvalidStatus
	}
	return s.repo.UpdateEvent(ctx, event)
}

func (s *calendarService) DeleteEvent(ctx context.Context, id string) error {
	return s.repo.DeleteEvent(ctx, id)
}
