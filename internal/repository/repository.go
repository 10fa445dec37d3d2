package repository

import (
	"context"
	"database/sql"
	"errors"

	"bookmarks_backend/internal/models"
)

// Well-known storage failures. ErrDuplicateEmail is typed so the boundary
// can map it to a conflict instead of a server fault.
var (
	ErrDuplicateEmail = errors.New("email is already taken")
)

// Users is the credential store. Lookups return (nil, nil) when no row
// matches; callers decide whether absence is an error.
type Users interface {
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	Update(ctx context.Context, id int, p models.UserPatch) (*models.User, error)
}

// Bookmarks stores per-user records. Every operation is scoped by userID so
// one user's rows are invisible to another's queries.
type Bookmarks interface {
	Create(ctx context.Context, userID int, b models.Bookmark) (*models.Bookmark, error)
	ListByUser(ctx context.Context, userID int) ([]models.Bookmark, error)
	GetByID(ctx context.Context, userID, id int) (*models.Bookmark, error)
	Update(ctx context.Context, userID, id int, p models.BookmarkPatch) (*models.Bookmark, error)
	Delete(ctx context.Context, userID, id int) (bool, error)
}

type Repository struct {
	Users     Users
	Bookmarks Bookmarks
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:     NewUserRepository(db),
		Bookmarks: NewBookmarkRepository(db),
	}
}
