package ports

import (
	"context"

	"github.com/authcore/identity-service/internal/core/domain"
)

// RoleRepository defines the persistence contract for roles. Lookup is by
// exact name match on the fixed enumeration. Create must tolerate the
// "already exists" race so bootstrap stays idempotent across concurrent
// process startups.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
}
