package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bookmarks_backend/internal/models"
)

type BookmarkRepository struct {
	db *sql.DB
}

func NewBookmarkRepository(db *sql.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// Ensure implementation of Bookmarks interface at compile time.
var _ Bookmarks = (*BookmarkRepository)(nil)

const (
	insertBookmarkSQL = `INSERT INTO bookmarks (user_id, title, description, link, created_at, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`
	selectBookmarkSQL = `SELECT id, user_id, title, description, link, created_at, updated_at
		FROM bookmarks WHERE id = ? AND user_id = ?`
	listBookmarksSQL = `SELECT id, user_id, title, description, link, created_at, updated_at
		FROM bookmarks WHERE user_id = ? ORDER BY id ASC`
	deleteBookmarkSQL = `DELETE FROM bookmarks WHERE id = ? AND user_id = ?`
)

// Create inserts a bookmark owned by userID and returns the stored row.
func (r *BookmarkRepository) Create(ctx context.Context, userID int, b models.Bookmark) (*models.Bookmark, error) {
	res, err := r.db.ExecContext(ctx, insertBookmarkSQL, userID, b.Title, b.Description, b.Link)
	if err != nil {
		return nil, fmt.Errorf("insert bookmark for user %d: %w", userID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id for bookmark: %w", err)
	}
	return r.GetByID(ctx, userID, int(lastID))
}

// ListByUser returns all bookmarks owned by userID, oldest first.
func (r *BookmarkRepository) ListByUser(ctx context.Context, userID int) ([]models.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, listBookmarksSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Bookmark, 0, 16)
	for rows.Next() {
		b, err := scanBookmark(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan bookmark row: %w", err)
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookmarks for user %d: %w", userID, err)
	}
	return out, nil
}

// GetByID fetches one bookmark by id, scoped to its owner.
// Returns (nil, nil) when the row does not exist or belongs to someone else.
func (r *BookmarkRepository) GetByID(ctx context.Context, userID, id int) (*models.Bookmark, error) {
	row := r.db.QueryRowContext(ctx, selectBookmarkSQL, id, userID)
	b, err := scanBookmark(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select bookmark id=%d user=%d: %w", id, userID, err)
	}
	return b, nil
}

// Update applies the non-nil patch fields to an owned bookmark and returns
// the updated row, or (nil, nil) when no owned row matches.
func (r *BookmarkRepository) Update(ctx context.Context, userID, id int, p models.BookmarkPatch) (*models.Bookmark, error) {
	if p.Empty() {
		return r.GetByID(ctx, userID, id)
	}

	var (
		sets []string
		args []any
	)
	if p.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *p.Title)
	}
	if p.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *p.Description)
	}
	if p.Link != nil {
		sets = append(sets, "link = ?")
		args = append(args, *p.Link)
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	q := "UPDATE bookmarks SET " + strings.Join(sets, ", ") + " WHERE id = ? AND user_id = ?"
	args = append(args, id, userID)

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("update bookmark id=%d user=%d: %w", id, userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected for bookmark id=%d: %w", id, err)
	}
	if affected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, userID, id)
}

// Delete removes an owned bookmark and reports whether a row was removed.
func (r *BookmarkRepository) Delete(ctx context.Context, userID, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteBookmarkSQL, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete bookmark id=%d user=%d: %w", id, userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for bookmark id=%d: %w", id, err)
	}
	return affected > 0, nil
}

func scanBookmark(scan func(dest ...any) error) (*models.Bookmark, error) {
	var (
		b    models.Bookmark
		desc sql.NullString
	)
	if err := scan(&b.ID, &b.UserID, &b.Title, &desc, &b.Link, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Description = desc.String
	return &b, nil
}
