package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookmarks_backend/internal/models"
	"bookmarks_backend/internal/repository"
	"bookmarks_backend/internal/token"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows. ErrInvalidCredentials is shared by the
// unknown-email and wrong-password cases so sign-in never reveals which
// factor failed.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles signup, signin and request authentication.
type AuthService struct {
	users  repository.Users
	tokens *token.Manager
}

func NewAuthService(users repository.Users, tokens *token.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// SignUp hashes the password and creates a new user. A duplicate email
// surfaces as repository.ErrDuplicateEmail for the boundary to map.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}
	return s.users.Create(ctx, email, hash)
}

// SignIn verifies credentials and returns a signed session token.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(u.ID)
}

// Authenticate validates a presented token and resolves its subject to a
// stored user. A cryptographically valid token whose subject no longer
// exists fails with ErrUserNotFound.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	userID, err := s.tokens.Parse(accessToken)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash. A malformed stored hash simply
// fails the comparison.
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
