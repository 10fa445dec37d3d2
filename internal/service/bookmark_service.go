package service

import (
	"context"
	"errors"

	"bookmarks_backend/internal/models"
	"bookmarks_backend/internal/repository"
)

// ErrBookmarkNotFound covers both a missing id and an id owned by another
// user; the two cases are indistinguishable on purpose.
var ErrBookmarkNotFound = errors.New("bookmark not found")

type BookmarkService struct {
	bookmarks repository.Bookmarks
}

func NewBookmarkService(bookmarks repository.Bookmarks) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks}
}

func (s *BookmarkService) Create(ctx context.Context, userID int, title, description, link string) (*models.Bookmark, error) {
	return s.bookmarks.Create(ctx, userID, models.Bookmark{
		Title:       title,
		Description: description,
		Link:        link,
	})
}

func (s *BookmarkService) List(ctx context.Context, userID int) ([]models.Bookmark, error) {
	return s.bookmarks.ListByUser(ctx, userID)
}

func (s *BookmarkService) GetByID(ctx context.Context, userID, id int) (*models.Bookmark, error) {
	b, err := s.bookmarks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookmarkNotFound
	}
	return b, nil
}

func (s *BookmarkService) Edit(ctx context.Context, userID, id int, p models.BookmarkPatch) (*models.Bookmark, error) {
	b, err := s.bookmarks.Update(ctx, userID, id, p)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookmarkNotFound
	}
	return b, nil
}

func (s *BookmarkService) Delete(ctx context.Context, userID, id int) error {
	deleted, err := s.bookmarks.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBookmarkNotFound
	}
	return nil
}
