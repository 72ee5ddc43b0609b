package domain

import (
	"errors"
	"time"
)

// Role is the coarse-grained permission tier carried in every token and
// stored per user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")

// Profile-update failures. All surface as 400 with the message verbatim.
var ErrNoChanges = errors.New("no changes to update")
var ErrCurrentPasswordRequired = errors.New("current password is required")
var ErrWrongCurrentPassword = errors.New("invalid current password")
var ErrSamePassword = errors.New("new password must be different from the current one")

// Token verification failures.
var ErrInvalidToken = errors.New("invalid token")
var ErrExpiredToken = errors.New("token expired")

// User models an account. PasswordHash is never serialized; an empty hash
// means the account cannot log in with a password.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TokenClaims is the identity recovered from a verified token.
type TokenClaims struct {
	UserID string
	Role   Role
}
