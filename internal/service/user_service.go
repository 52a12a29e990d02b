package service

import (
	"context"

	"user-api/internal/domain"
	"user-api/internal/repository"
)

// RetainPassword marks an update that keeps the stored password unchanged.
// The HTTP layer passes it when the request omits the password field.
const RetainPassword = ""

// UserService describes user lifecycle operations.
type UserService interface {
	Create(ctx context.Context, username, email, password string) (*domain.User, error)
	Update(ctx context.Context, id int64, username, email, password string) (*domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, username, email, password string) (*domain.User, error) {
	user := &domain.User{
		Username: username,
		Email:    email,
		Password: password,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update overwrites username, email and password of an existing user. Passing
// RetainPassword copies the stored password forward unchanged. Returns
// repository.ErrUserNotFound when no row exists for id; nothing is mutated in
// that case.
func (s *userService) Update(ctx context.Context, id int64, username, email, password string) (*domain.User, error) {
	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if password == RetainPassword {
		password = existing.Password
	}

	existing.Username = username
	existing.Email = email
	existing.Password = password
	if err := s.users.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}
