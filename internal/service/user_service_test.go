package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"user-api/internal/domain"
	"user-api/internal/repository"
)

type stubUserRepository struct {
	users       map[int64]*domain.User
	nextID      int64
	updateCalls int
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{users: map[int64]*domain.User{}}
}

func (s *stubUserRepository) Migrate(ctx context.Context) error { return nil }

func (s *stubUserRepository) Create(ctx context.Context, user *domain.User) error {
	s.nextID++
	now := time.Now().UTC()
	user.ID = s.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *stubUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubUserRepository) Update(ctx context.Context, user *domain.User) error {
	s.updateCalls++
	if _, ok := s.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	user.UpdatedAt = time.Now().UTC()
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func TestCreateAssignsServerFields(t *testing.T) {
	repo := newStubUserRepository()
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), "alice", "alice@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)
	require.Equal(t, "secret", user.Password)
	require.False(t, user.CreatedAt.IsZero())
	require.True(t, user.CreatedAt.Equal(user.UpdatedAt))
}

func TestUpdateReplacesPassword(t *testing.T) {
	repo := newStubUserRepository()
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), "alice", "alice@example.com", "old")
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, "alice2", "alice2@example.com", "new")
	require.NoError(t, err)
	require.Equal(t, "alice2", updated.Username)
	require.Equal(t, "alice2@example.com", updated.Email)
	require.Equal(t, "new", updated.Password)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "new", stored.Password)
}

func TestUpdateRetainsStoredPassword(t *testing.T) {
	repo := newStubUserRepository()
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), "alice", "alice@example.com", "original")
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, "renamed", "renamed@example.com", RetainPassword)
	require.NoError(t, err)
	require.Equal(t, "original", updated.Password)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "original", stored.Password)
	require.Equal(t, "renamed", stored.Username)
}

func TestUpdateUnknownIDPerformsNoWrite(t *testing.T) {
	repo := newStubUserRepository()
	svc := NewUserService(repo)

	_, err := svc.Update(context.Background(), 42, "ghost", "ghost@example.com", "pw")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
	require.Zero(t, repo.updateCalls)
}
