package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("email already in use")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrRoleNotConfigured = errors.New("required role not configured")
var ErrTokenInvalid = errors.New("invalid token")
var ErrTooManyAttempts = errors.New("too many login attempts")

// User models a registered account. Every user references exactly one role
// by ID; the reference must resolve to a role present in the role store.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RoleID       string    `json:"-"`
	RoleName     string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
