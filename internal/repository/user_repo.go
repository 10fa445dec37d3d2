package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bookmarks_backend/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (email, password_hash, created_at, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`
	selectUserByEmailSQL = `SELECT id, email, first_name, last_name, password_hash, created_at, updated_at FROM users WHERE email = ?`
	selectUserByIDSQL    = `SELECT id, email, first_name, last_name, password_hash, created_at, updated_at FROM users WHERE id = ?`
)

// isUniqueViolation reports whether err is the sqlite unique-index failure.
// The unique index on users.email is what makes concurrent signups with the
// same address deterministic: exactly one insert wins.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Create inserts a new user and returns the stored row.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, email, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user %q: %w", email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id for user %q: %w", email, err)
	}
	return r.GetByID(ctx, int(lastID))
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := r.scanUser(r.db.QueryRowContext(ctx, selectUserByEmailSQL, email))
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	return u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	u, err := r.scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
	if err != nil {
		return nil, fmt.Errorf("select user id=%d: %w", id, err)
	}
	return u, nil
}

// Update applies the non-nil patch fields and returns the updated row.
// An empty patch is a no-op read.
func (r *UserRepository) Update(ctx context.Context, id int, p models.UserPatch) (*models.User, error) {
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	var (
		sets []string
		args []any
	)
	if p.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *p.Email)
	}
	if p.FirstName != nil {
		sets = append(sets, "first_name = ?")
		args = append(args, *p.FirstName)
	}
	if p.LastName != nil {
		sets = append(sets, "last_name = ?")
		args = append(args, *p.LastName)
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	q := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update user id=%d: %w", id, err)
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var (
		u         models.User
		firstName sql.NullString
		lastName  sql.NullString
	)
	err := row.Scan(&u.ID, &u.Email, &firstName, &lastName, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.FirstName = firstName.String
	u.LastName = lastName.String
	return &u, nil
}
