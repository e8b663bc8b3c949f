package service_test

import (
	"context"
	"testing"

	"evently/internal/model"
	repoMocks "evently/internal/repository/mocks"
	"evently/internal/service"
	apperrors "evently/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := repoMocks.NewCategoryRepositoryMock()
		svc := service.NewCategoryService(repo)

		repo.On("Create", ctx, "Music").Return(&model.Category{ID: 1, Name: "Music"}, nil).Once()

		created, err := svc.Create(ctx, "Music")

		require.NoError(t, err)
		assert.Equal(t, "Music", created.Name)
		repo.AssertExpectations(t)
	})

	t.Run("Success - surrounding whitespace trimmed", func(t *testing.T) {
		repo := repoMocks.NewCategoryRepositoryMock()
		svc := service.NewCategoryService(repo)

		repo.On("Create", ctx, "Music").Return(&model.Category{ID: 1, Name: "Music"}, nil).Once()

		_, err := svc.Create(ctx, "  Music ")

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Failed - duplicate name conflicts", func(t *testing.T) {
		repo := repoMocks.NewCategoryRepositoryMock()
		svc := service.NewCategoryService(repo)

		repo.On("Create", ctx, "Music").Return(nil, apperrors.ErrCategoryExists).Once()

		_, err := svc.Create(ctx, "Music")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrCategoryExists)
	})

	t.Run("Failed - blank name rejected", func(t *testing.T) {
		repo := repoMocks.NewCategoryRepositoryMock()
		svc := service.NewCategoryService(repo)

		_, err := svc.Create(ctx, "   ")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestCategoryService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := repoMocks.NewCategoryRepositoryMock()
		svc := service.NewCategoryService(repo)

		categories := []*model.Category{{ID: 1, Name: "Music"}, {ID: 2, Name: "Tech"}}
		repo.On("List", ctx).Return(categories, nil).Once()

		got, err := svc.List(ctx)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}
