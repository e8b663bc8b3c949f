package service

import (
	"context"
	"strings"

	"evently/internal/model"
	"evently/internal/repository"
	apperrors "evently/pkg/app_errors"
)

type UserService interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByClerkID(ctx context.Context, clerkID string) (*model.User, error)
	Update(ctx context.Context, clerkID string, params model.UpdateUserParams) (*model.User, error)
	Delete(ctx context.Context, clerkID string) error
}

type UserServiceImpl struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &UserServiceImpl{repo: repo}
}

func (s *UserServiceImpl) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if strings.TrimSpace(user.ClerkID) == "" ||
		strings.TrimSpace(user.Email) == "" ||
		strings.TrimSpace(user.Username) == "" {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.Create(ctx, user)
}

func (s *UserServiceImpl) GetByClerkID(ctx context.Context, clerkID string) (*model.User, error) {
	return s.repo.FindByClerkID(ctx, clerkID)
}

func (s *UserServiceImpl) Update(ctx context.Context, clerkID string, params model.UpdateUserParams) (*model.User, error) {
	return s.repo.Update(ctx, clerkID, params)
}

func (s *UserServiceImpl) Delete(ctx context.Context, clerkID string) error {
	return s.repo.Delete(ctx, clerkID)
}
