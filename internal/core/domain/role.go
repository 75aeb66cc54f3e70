package domain

import (
	"errors"
	"time"
)

var ErrRoleNotFound = errors.New("role not found")
var ErrRoleExists = errors.New("role already exists")

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// SeededRoles is the fixed set of roles the bootstrap step guarantees to exist.
var SeededRoles = []string{RoleUser, RoleAdmin}

// Role is a named privilege level. Roles are created once at bootstrap and
// never mutated or deleted afterwards.
type Role struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidRoleName reports whether name belongs to the fixed role enumeration.
func ValidRoleName(name string) bool {
	return name == RoleUser || name == RoleAdmin
}

// RoleSatisfies reports whether a token's role claim grants access to a
// resource requiring the given role. The hierarchy is flat privilege
// inclusion: ADMIN implies USER-level access, never the reverse.
func RoleSatisfies(claim, required string) bool {
	if claim == required {
		return true
	}
	return claim == RoleAdmin && required == RoleUser
}
