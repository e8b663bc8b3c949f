package apperrors

import "errors"

var (
	ErrMissingDatabaseURL  = errors.New("DATABASE_URL is not configured")
	ErrUserNotFound        = errors.New("user not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrCategoryExists      = errors.New("category name already exists")
	ErrUserExists          = errors.New("user with this clerk id, email or username already exists")
	ErrOrderExists         = errors.New("order already recorded for this payment")
	ErrUnauthorized        = errors.New("unauthorized or event not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrPageNotCached       = errors.New("page not cached")
	ErrInternalServerError = errors.New("internal server error")
)
