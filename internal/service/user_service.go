package service

import (
	"context"

	"bookmarks_backend/internal/models"
	"bookmarks_backend/internal/repository"
)

// UserService serves profile edits. The id always comes from the request
// guard, never from a client payload.
type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

// Edit applies the patch to the user bound to the validated token.
func (s *UserService) Edit(ctx context.Context, id int, p models.UserPatch) (*models.User, error) {
	u, err := s.users.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
