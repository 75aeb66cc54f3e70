package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/authcore/identity-service/internal/core/domain"
)

func TestSeedRoles_CreatesBoth(t *testing.T) {
	roles := newStubRoleRepo()

	if err := SeedRoles(context.Background(), roles, zerolog.Nop()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	for _, name := range []string{domain.RoleUser, domain.RoleAdmin} {
		if _, err := roles.FindByName(context.Background(), name); err != nil {
			t.Fatalf("role %s missing after seed: %v", name, err)
		}
	}
	if len(roles.roles) != 2 {
		t.Fatalf("expected exactly two roles, got %d", len(roles.roles))
	}
}

func TestSeedRoles_Idempotent(t *testing.T) {
	roles := newStubRoleRepo()

	if err := SeedRoles(context.Background(), roles, zerolog.Nop()); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := SeedRoles(context.Background(), roles, zerolog.Nop()); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if len(roles.roles) != 2 {
		t.Fatalf("expected exactly two roles after repeat seed, got %d", len(roles.roles))
	}
}

// raceRoleRepo reports "absent" on lookup but "exists" on create, simulating
// a concurrent instance winning the seed race between the two calls.
type raceRoleRepo struct {
	*stubRoleRepo
}

func (r *raceRoleRepo) FindByName(_ context.Context, _ string) (*domain.Role, error) {
	return nil, domain.ErrRoleNotFound
}

func (r *raceRoleRepo) Create(_ context.Context, _ *domain.Role) (*domain.Role, error) {
	return nil, domain.ErrRoleExists
}

func TestSeedRoles_ToleratesExistsRace(t *testing.T) {
	roles := &raceRoleRepo{newStubRoleRepo()}

	if err := SeedRoles(context.Background(), roles, zerolog.Nop()); err != nil {
		t.Fatalf("seed must tolerate the already-exists race: %v", err)
	}
}
