package service

import (
	"context"
	"strings"

	"evently/internal/model"
	"evently/internal/repository"
	apperrors "evently/pkg/app_errors"
)

type CategoryService interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	List(ctx context.Context) ([]*model.Category, error)
}

type CategoryServiceImpl struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{repo: repo}
}

func (s *CategoryServiceImpl) Create(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.Create(ctx, name)
}

func (s *CategoryServiceImpl) List(ctx context.Context) ([]*model.Category, error) {
	return s.repo.List(ctx)
}
