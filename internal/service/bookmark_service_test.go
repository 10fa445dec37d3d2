package service

import (
	"context"
	"errors"
	"testing"

	"bookmarks_backend/internal/models"
)

// mockBookmarksRepo is a lightweight in-test mock for repository.Bookmarks.
type mockBookmarksRepo struct {
	CreateFn  func(userID int, b models.Bookmark) (*models.Bookmark, error)
	ListFn    func(userID int) ([]models.Bookmark, error)
	GetByIDFn func(userID, id int) (*models.Bookmark, error)
	UpdateFn  func(userID, id int, p models.BookmarkPatch) (*models.Bookmark, error)
	DeleteFn  func(userID, id int) (bool, error)
}

func (m *mockBookmarksRepo) Create(ctx context.Context, userID int, b models.Bookmark) (*models.Bookmark, error) {
	return m.CreateFn(userID, b)
}

func (m *mockBookmarksRepo) ListByUser(ctx context.Context, userID int) ([]models.Bookmark, error) {
	return m.ListFn(userID)
}

func (m *mockBookmarksRepo) GetByID(ctx context.Context, userID, id int) (*models.Bookmark, error) {
	return m.GetByIDFn(userID, id)
}

func (m *mockBookmarksRepo) Update(ctx context.Context, userID, id int, p models.BookmarkPatch) (*models.Bookmark, error) {
	return m.UpdateFn(userID, id, p)
}

func (m *mockBookmarksRepo) Delete(ctx context.Context, userID, id int) (bool, error) {
	return m.DeleteFn(userID, id)
}

func TestBookmarkService_Create_SetsOwner(t *testing.T) {
	mock := &mockBookmarksRepo{
		CreateFn: func(userID int, b models.Bookmark) (*models.Bookmark, error) {
			if userID != 7 {
				t.Fatalf("expected owner 7, got %d", userID)
			}
			b.ID = 1
			b.UserID = userID
			return &b, nil
		},
	}
	svc := NewBookmarkService(mock)

	b, err := svc.Create(context.Background(), 7, "hello", "", "no link")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if b.UserID != 7 || b.Title != "hello" {
		t.Fatalf("unexpected bookmark: %+v", b)
	}
}

func TestBookmarkService_GetByID_MissingOrForeign(t *testing.T) {
	mock := &mockBookmarksRepo{
		GetByIDFn: func(userID, id int) (*models.Bookmark, error) {
			return nil, nil
		},
	}
	svc := NewBookmarkService(mock)

	if _, err := svc.GetByID(context.Background(), 7, 999); !errors.Is(err, ErrBookmarkNotFound) {
		t.Fatalf("expected ErrBookmarkNotFound, got %v", err)
	}
}

func TestBookmarkService_Edit_MissingOrForeign(t *testing.T) {
	mock := &mockBookmarksRepo{
		UpdateFn: func(userID, id int, p models.BookmarkPatch) (*models.Bookmark, error) {
			return nil, nil
		},
	}
	svc := NewBookmarkService(mock)

	if _, err := svc.Edit(context.Background(), 7, 999, models.BookmarkPatch{}); !errors.Is(err, ErrBookmarkNotFound) {
		t.Fatalf("expected ErrBookmarkNotFound, got %v", err)
	}
}

func TestBookmarkService_Delete(t *testing.T) {
	deleted := false
	mock := &mockBookmarksRepo{
		DeleteFn: func(userID, id int) (bool, error) {
			deleted = true
			return true, nil
		},
	}
	svc := NewBookmarkService(mock)

	if err := svc.Delete(context.Background(), 7, 3); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if !deleted {
		t.Fatal("expected repo Delete to be called")
	}
}

func TestBookmarkService_Delete_Missing(t *testing.T) {
	mock := &mockBookmarksRepo{
		DeleteFn: func(userID, id int) (bool, error) {
			return false, nil
		},
	}
	svc := NewBookmarkService(mock)

	if err := svc.Delete(context.Background(), 7, 999); !errors.Is(err, ErrBookmarkNotFound) {
		t.Fatalf("expected ErrBookmarkNotFound, got %v", err)
	}
}
