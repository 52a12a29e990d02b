package repository

import (
	"context"
	"errors"

	"user-api/internal/domain"
)

// ErrUserNotFound is returned when no user row exists for the requested id.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Migrate(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
