package memory

import (
	"context"

	"github.com/contempsico/portal-be/types"
)

func cloneAnnouncement(a *types.Announcement) types.Announcement {
	clone := *a
	if a.Visibility != nil {
		clone.Visibility = append([]string(nil), a.Visibility...)
	}
	return clone
}

func (s *Store) CreateAnnouncement(ctx context.Context, announcement *types.Announcement) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := cloneAnnouncement(announcement)
	s.announcements = append([]*types.Announcement{&clone}, s.announcements...)
	return nil
}

func (s *Store) GetAnnouncement(ctx context.Context, id string) (*types.Announcement, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, announcement := range s.announcements {
		if announcement.ID == id {
			clone := cloneAnnouncement(announcement)
			return &clone, nil
		}
	}
	return nil, types.ErrNotFound
}

func (s *Store) ListAnnouncements(ctx context.Context) ([]types.Announcement, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	announcements := make([]types.Announcement, 0, len(s.announcements))
	for _, announcement := range s.announcements {
		announcements = append(announcements, cloneAnnouncement(announcement))
	}
	return announcements, nil
}

func (s *Store) UpdateAnnouncement(ctx context.Context, announcement *types.Announcement) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.announcements {
		if existing.ID == announcement.ID {
			clone := cloneAnnouncement(announcement)
			s.announcements[i] = &clone
			return nil
		}
	}
	return types.ErrNotFound
}

func (s *Store) DeleteAnnouncement(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.announcements {
		if existing.ID == id {
			s.announcements = append(s.announcements[:i], s.announcements[i+1:]...)
			return nil
		}
	}
	return types.ErrNotFound
}

func (s *Store) CreateEvent(ctx context.Context, event *types.CalendarEvent) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *event
	s.events = append(s.events, &clone)
	return nil
}

func (s *Store) GetEvent(ctx context.Context, id string) (*types.CalendarEvent, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, event := range s.events {
		if event.ID == id {
			clone := *event
			return &clone, nil
		}
	}
	return nil, types.ErrNotFound
}

func (s *Store) ListEvents(ctx context.Context) ([]types.CalendarEvent, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]types.CalendarEvent, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, *event)
	}
	return events, nil
}

func (s *Store) UpdateEvent(ctx context.Context, event *types.CalendarEvent) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.events {
		if existing.ID == event.ID {
			clone := *event
			s.events[i] = &clone
			return nil
		}
	}
	return types.ErrNotFound
}

func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.events {
		if existing.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return types.ErrNotFound
}
