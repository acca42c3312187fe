package service

import (
	"context"
	"time"

	"github.com/contempsico/portal-be/repository"
	"github.com/contempsico/portal-be/types"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Authenticate(ctx context.Context, email, password string) (*types.User, error)
	CreateUser(ctx context.Context, user *types.User) error
	GetUser(ctx context.Context, id string) (*types.User, error)
	ListAssignableUsers(ctx context.Context) ([]*types.User, error)
	PaginateUsers(ctx context.Context, page, limit int64) ([]*types.User, int64, error)
	UpdateUser(ctx context.Context, id string, user *types.User) error
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	repo repository.UserRepo
}

func NewUserService(repo repository.UserRepo) UserService {
	return &userService{repo: repo}
}

// Authenticate verifies credentials and returns the matching user. The only
// error callers should surface to a login form is ErrInvalidCredentials; a
// missing account is deliberately indistinguishable from a wrong password.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*types.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if err == types.ErrNotFound {
			return nil, types.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, types.ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, user *types.User) error {
	if !types.ValidProfile(user.Profile) {
		return types.ErrForbidden
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.ID = uuid.NewString()
	user.Password = string(hash)
	user.CreateAt = time.Now().Unix()
	user.UpdateAt = time.Now().Unix()
	return s.repo.CreateUser(ctx, user)
}

func (s *userService) GetUser(ctx context.Context, id string) (*types.User, error) {
	return s.repo.GetUser(ctx, id)
}

// ListAssignableUsers returns every user; tasks may be assigned to any
// profile, management included.
func (s *userService) ListAssignableUsers(ctx context.Context) ([]*types.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *userService) PaginateUsers(ctx context.Context, page, limit int64) ([]*types.User, int64, error) {
	return s.repo.PaginateUsers(ctx, page, limit)
}

// UpdateUser merges non-empty fields over the stored record. The profile is
// immutable: it is never copied from the incoming record.
func (s *userService) UpdateUser(ctx context.Context, id string, user *types.User) error {
	dbUser, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if user.Name != "" {
		dbUser.Name = user.Name
	}
	if user.Email != "" {
		dbUser.Email = user.Email
	}
	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		dbUser.Password = string(hash)
	}
	dbUser.UpdateAt = time.Now().Unix()
	return s.repo.UpdateUser(ctx, dbUser)
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	return s.repo.DeleteUser(ctx, id)
}
