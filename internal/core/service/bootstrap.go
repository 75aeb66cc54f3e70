package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/authcore/identity-service/internal/core/domain"
	"github.com/authcore/identity-service/internal/core/ports"
)

// SeedRoles ensures the fixed USER and ADMIN roles exist. It is idempotent
// and tolerates the "role already exists" race when several instances start
// at once: the unique index on role name decides, and a duplicate outcome is
// treated as success.
func SeedRoles(ctx context.Context, roles ports.RoleRepository, logger zerolog.Logger) error {
	for _, name := range domain.SeededRoles {
		if _, err := roles.FindByName(ctx, name); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrRoleNotFound) {
			return fmt.Errorf("lookup role %s: %w", name, err)
		}

		role := &domain.Role{Name: name, CreatedAt: time.Now().UTC()}
		if _, err := roles.Create(ctx, role); err != nil {
			if errors.Is(err, domain.ErrRoleExists) {
				// Another instance won the race.
				continue
			}
			return fmt.Errorf("create role %s: %w", name, err)
		}
		logger.Info().Str("role", name).Msg("seeded role")
	}
	return nil
}
