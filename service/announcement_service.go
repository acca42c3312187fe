package service

import (
	"context"
	"sort"
	"time"

	"github.com/contempsico/portal-be/repository"
	"github.com/contempsico/portal-be/types"
	"github.com/google/uuid"
)

type AnnouncementService interface {
	ListAnnouncements(ctx context.Context, viewer *types.User) ([]types.Announcement, error)
	CreateAnnouncement(ctx context.Context, author *types.User, req *types.CreateAnnouncementRequest) (*types.Announcement, error)
	UpdateAnnouncement(ctx context.Context, announcement *types.Announcement) error
	DeleteAnnouncement(ctx context.Context, id string) error
}

type announcementService struct {
	repo     repository.AnnouncementRepo
	notifier Notifier
}

func NewAnnouncementService(repo repository.AnnouncementRepo, notifier Notifier) AnnouncementService {
	return &announcementService{repo: repo, notifier: notifier}
}

// ListAnnouncements returns the board newest-first, filtered down to what
// the viewer's profile may see.
func (s *announcementService) ListAnnouncements(ctx context.Context, viewer *types.User) ([]types.Announcement, error) {
	announcements, err := s.repo.ListAnnouncements(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(announcements, func(i, j int) bool {
		return announcements[i].Date > announcements[j].Date
	})
	return types.FilterVisible(announcements, viewer), nil
}

func (s *announcementService) CreateAnnouncement(ctx context.Context, author *types.User, req *types.CreateAnnouncementRequest) (*types.Announcement, error) {
	announcement := &types.Announcement{
		ID:         uuid.NewString(),
		Title:      req.Title,
		Content:    req.Content,
		Author:     author.Name,
		Date:       time.Now().Unix(),
		Visibility: req.Visibility,
	}
	if err := s.repo.CreateAnnouncement(ctx, announcement); err != nil {
		return nil, err
	}
	s.notifier.Broadcast(EventAnnouncementCreated, announcement)
	return announcement, nil
}

func (s *announcementService) UpdateAnnouncement(ctx context.Context, announcement *types.Announcement) error {
	return s.repo.UpdateAnnouncement(ctx, announcement)
}

func (s *announcementService) DeleteAnnouncement(ctx context.Context, id string) error {
	return s.repo.DeleteAnnouncement(ctx, id)
}
