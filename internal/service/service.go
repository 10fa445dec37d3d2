package service

import (
	"context"

	"bookmarks_backend/internal/models"
	"bookmarks_backend/internal/repository"
	"bookmarks_backend/internal/token"
)

// Authorization covers the auth flows: account creation, credential
// verification + token issuance, and resolving a presented token back to
// its user.
type Authorization interface {
	SignUp(ctx context.Context, email, password string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
}

// Users exposes profile edits for an already-resolved identity. Reads need
// no service call: the guard attaches the resolved user to the request.
type Users interface {
	Edit(ctx context.Context, id int, p models.UserPatch) (*models.User, error)
}

// Bookmarks exposes CRUD over records owned by a single user.
type Bookmarks interface {
	Create(ctx context.Context, userID int, title, description, link string) (*models.Bookmark, error)
	List(ctx context.Context, userID int) ([]models.Bookmark, error)
	GetByID(ctx context.Context, userID, id int) (*models.Bookmark, error)
	Edit(ctx context.Context, userID, id int, p models.BookmarkPatch) (*models.Bookmark, error)
	Delete(ctx context.Context, userID, id int) error
}

// Service aggregates all sub-services for the HTTP layer.
type Service struct {
	Authorization
	Users
	Bookmarks
}

// NewService wires the repository layer and token manager into concrete
// services.
func NewService(repos *repository.Repository, tokens *token.Manager) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, tokens),
		Users:         NewUserService(repos.Users),
		Bookmarks:     NewBookmarkService(repos.Bookmarks),
	}
}
