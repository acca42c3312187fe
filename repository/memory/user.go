package memory

import (
	"context"

	"github.com/contempsico/portal-be/types"
)

func (s *Store) CreateUser(ctx context.Context, user *types.User) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return types.ErrEmailTaken
		}
	}
	clone := *user
	s.users = append(s.users, &clone)
	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*types.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, types.ErrNotFound
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, types.ErrNotFound
}

func (s *Store) ListUsers(ctx context.Context) ([]*types.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]*types.User, 0, len(s.users))
	for _, user := range s.users {
		clone := *user
		users = append(users, &clone)
	}
	return users, nil
}

func (s *Store) PaginateUsers(ctx context.Context, page, limit int64) ([]*types.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(users))
	start := (page - 1) * limit
	if start >= total {
		return []*types.User{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return users[start:end], total, nil
}

func (s *Store) UpdateUser(ctx context.Context, user *types.User) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.users {
		if existing.ID == user.ID {
			clone := *user
			s.users[i] = &clone
			return nil
		}
	}
	return types.ErrNotFound
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.users {
		if existing.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return types.ErrNotFound
}
