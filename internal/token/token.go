package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Typed validation failures. Handlers collapse all of them into a single
// generic 401 so the client cannot tell why a token was refused.
var (
	ErrMissing = errors.New("token is missing")
	ErrExpired = errors.New("token is expired")
	ErrInvalid = errors.New("token is invalid")
)

// Claims is the JWT payload: the subject user id plus registered
// issued-at/expires-at timestamps.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// Manager issues and validates HS256 session tokens. The secret and TTL are
// fixed at construction; validation is stateless and never touches storage.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager builds a Manager. An empty secret is a configuration error and
// is refused here so the process fails at startup, not per request.
func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("signing secret is empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %v", ttl)
	}
	return &Manager{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the given user id, valid for the configured TTL.
func (m *Manager) Issue(userID int) (string, error) {
	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
	})
	signed, err := tk.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry and returns the subject user id.
// It returns ErrMissing for an empty token, ErrExpired for an elapsed one
// and ErrInvalid for anything tampered, malformed or signed differently.
func (m *Manager) Parse(accessToken string) (int, error) {
	if accessToken == "" {
		return 0, ErrMissing
	}

	tk, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpired
		}
		return 0, ErrInvalid
	}

	claims, ok := tk.Claims.(*Claims)
	if !ok || !tk.Valid {
		return 0, ErrInvalid
	}
	return claims.UserID, nil
}
