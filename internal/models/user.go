package models

import "time"

// User is a registered account. PasswordHash never leaves the process:
// it is excluded from JSON and only the auth service reads it.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserPatch carries the mutable profile fields for PATCH /users.
// There is deliberately no ID field: the edited record is always the
// one resolved from the bearer token.
type UserPatch struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Email == nil && p.FirstName == nil && p.LastName == nil
}
