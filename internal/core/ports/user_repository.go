package ports

import (
	"context"

	"github.com/authcore/identity-service/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// Save must fail with domain.ErrUserExists when the email is already taken;
// the store-level unique constraint is the authoritative guard against
// concurrent registrations, the ExistsByEmail pre-check is the fast path.
type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
}
