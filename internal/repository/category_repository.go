package repository

import (
	"context"

	"evently/internal/model"
	apperrors "evently/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	List(ctx context.Context) ([]*model.Category, error)
	FindByID(ctx context.Context, id int) (*model.Category, error)
	// FindByName matches the whole name case-insensitively.
	FindByName(ctx context.Context, name string) (*model.Category, error)
}

type CategoryRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &CategoryRepositoryImpl{
		pool: pool,
	}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, name string) (*model.Category, error) {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, name
	`

	var category model.Category
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&category.ID,
		&category.Name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrCategoryExists
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*model.Category, error) {
	query := `
		SELECT id, name
		FROM categories
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*model.Category, 0)
	for rows.Next() {
		var category model.Category
		err := rows.Scan(&category.ID, &category.Name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}
	return categories, nil
}

func (r *CategoryRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		WHERE id = $1
	`

	var category model.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindByName(ctx context.Context, name string) (*model.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		WHERE name ILIKE $1 ESCAPE '\'
	`

	var category model.Category
	err := r.pool.QueryRow(ctx, query, escapeLike(name)).Scan(&category.ID, &category.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}
