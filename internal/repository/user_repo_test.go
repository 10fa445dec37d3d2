package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"bookmarks_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func patchUser(email, first, last *string) models.UserPatch {
	return models.UserPatch{Email: email, FirstName: first, LastName: last}
}

func newMockUserRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewUserRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func userRows(id int, email string, first, last any, hash string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "email", "first_name", "last_name", "password_hash", "created_at", "updated_at"}).
		AddRow(id, email, first, last, hash, now, now)
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		passwordHash   string
		mockExpect     func(sqlmock.Sqlmock)
		wantID         int
		wantErr        error
		errContainsStr string
	}{
		{
			name:         "success",
			email:        "alice@gmail.com",
			passwordHash: "h123",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("alice@gmail.com", "h123").
					WillReturnResult(sqlmock.NewResult(42, 1))
				m.ExpectQuery(regexp.QuoteMeta(selectUserByIDSQL)).
					WithArgs(42).
					WillReturnRows(userRows(42, "alice@gmail.com", nil, nil, "h123"))
			},
			wantID: 42,
		},
		{
			name:         "duplicate email maps to typed error",
			email:        "alice@gmail.com",
			passwordHash: "h123",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("alice@gmail.com", "h123").
					WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.email"))
			},
			wantErr: ErrDuplicateEmail,
		},
		{
			name:         "exec error",
			email:        "bob@gmail.com",
			passwordHash: "h456",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("bob@gmail.com", "h456").
					WillReturnError(errors.New("db exec failed"))
			},
			errContainsStr: "insert user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			u, err := repo.Create(context.Background(), tt.email, tt.passwordHash)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if tt.errContainsStr != "" {
				if err == nil || !regexp.MustCompile(regexp.QuoteMeta(tt.errContainsStr)).MatchString(err.Error()) {
					t.Fatalf("expected error containing %q, got %v", tt.errContainsStr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if u == nil || u.ID != tt.wantID {
				t.Fatalf("unexpected user: %+v", u)
			}
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
		WithArgs("alice@gmail.com").
		WillReturnRows(userRows(7, "alice@gmail.com", "Alice", nil, "h123"))

	u, err := repo.GetByEmail(context.Background(), "alice@gmail.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil || u.ID != 7 || u.Email != "alice@gmail.com" || u.FirstName != "Alice" || u.PasswordHash != "h123" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
		WithArgs("missing@gmail.com").
		WillReturnError(sql.ErrNoRows)

	u, err := repo.GetByEmail(context.Background(), "missing@gmail.com")
	if err != nil {
		t.Fatalf("expected nil error for missing row, got %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil user, got %+v", u)
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectUserByIDSQL)).
		WithArgs(404).
		WillReturnError(sql.ErrNoRows)

	u, err := repo.GetByID(context.Background(), 404)
	if err != nil {
		t.Fatalf("expected nil error for missing row, got %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil user, got %+v", u)
	}
}

func TestUserRepository_Update_BuildsPartialSet(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	first := "hello"
	email := "fellow@gmail.com"

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET email = ?, first_name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?")).
		WithArgs("fellow@gmail.com", "hello", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectUserByIDSQL)).
		WithArgs(7).
		WillReturnRows(userRows(7, "fellow@gmail.com", "hello", nil, "h123"))

	u, err := repo.Update(context.Background(), 7, patchUser(&email, &first, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "fellow@gmail.com" || u.FirstName != "hello" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestUserRepository_Update_EmptyPatchIsRead(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectUserByIDSQL)).
		WithArgs(7).
		WillReturnRows(userRows(7, "alice@gmail.com", nil, nil, "h123"))

	u, err := repo.Update(context.Background(), 7, patchUser(nil, nil, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil || u.ID != 7 {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestUserRepository_Update_DuplicateEmail(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	email := "taken@gmail.com"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET email = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?")).
		WithArgs("taken@gmail.com", 7).
		WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.email"))

	_, err := repo.Update(context.Background(), 7, patchUser(&email, nil, nil))
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}
