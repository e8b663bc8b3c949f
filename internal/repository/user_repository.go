package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"evently/internal/model"
	apperrors "evently/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByClerkID(ctx context.Context, clerkID string) (*model.User, error)
	Update(ctx context.Context, clerkID string, params model.UpdateUserParams) (*model.User, error)
	Delete(ctx context.Context, clerkID string) error
}

type UserRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &UserRepositoryImpl{
		pool: pool,
	}
}

const userColumns = `id, clerk_id, email, username, first_name, last_name, photo, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID,
		&user.ClerkID,
		&user.Email,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Photo,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (clerk_id, email, username, first_name, last_name, photo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns + `
	`

	created, err := scanUser(r.pool.QueryRow(ctx, query,
		user.ClerkID, user.Email, user.Username, user.FirstName, user.LastName, user.Photo,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, err
	}
	return created, nil
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id int) (*model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepositoryImpl) FindByClerkID(ctx context.Context, clerkID string) (*model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE clerk_id = $1
	`

	user, err := scanUser(r.pool.QueryRow(ctx, query, clerkID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, clerkID string, params model.UpdateUserParams) (*model.User, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Username != nil {
		sets = append(sets, fmt.Sprintf("username = $%d", argPos))
		args = append(args, *params.Username)
		argPos++
	}
	if params.FirstName != nil {
		sets = append(sets, fmt.Sprintf("first_name = $%d", argPos))
		args = append(args, *params.FirstName)
		argPos++
	}
	if params.LastName != nil {
		sets = append(sets, fmt.Sprintf("last_name = $%d", argPos))
		args = append(args, *params.LastName)
		argPos++
	}
	if params.Photo != nil {
		sets = append(sets, fmt.Sprintf("photo = $%d", argPos))
		args = append(args, *params.Photo)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	args = append(args, clerkID)

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE clerk_id = $%d
		RETURNING `+userColumns+`
	`, strings.Join(sets, ", "), argPos)

	updated, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, clerkID string) error {
	query := `
		DELETE FROM users
		WHERE clerk_id = $1
	`

	result, err := r.pool.Exec(ctx, query, clerkID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
