package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/authcore/identity-service/internal/core/domain"
	"github.com/authcore/identity-service/internal/core/ports"
)

// AuthService composes the user store, role store, hasher, authenticator and
// token service into the register and login flows. It is stateless across
// requests; every collaborator arrives through the constructor.
type AuthService struct {
	users         ports.UserRepository
	roles         ports.RoleRepository
	hasher        ports.PasswordHasher
	tokens        ports.TokenService
	authenticator *Authenticator
	logger        zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	authenticator *Authenticator,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:         users,
		roles:         roles,
		hasher:        hasher,
		tokens:        tokens,
		authenticator: authenticator,
		logger:        logger,
	}
}

// Register creates an account with the USER role and returns a freshly
// issued token for it.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*ports.AuthResult, error) {
	return s.register(ctx, name, email, password, domain.RoleUser)
}

// RegisterAdmin creates an account with the ADMIN role. The route serving
// this operation must itself be guarded so only an existing admin reaches it;
// the orchestrator trusts that boundary.
func (s *AuthService) RegisterAdmin(ctx context.Context, name, email, password string) (*ports.AuthResult, error) {
	return s.register(ctx, name, email, password, domain.RoleAdmin)
}

func (s *AuthService) register(ctx context.Context, name, email, password, roleName string) (*ports.AuthResult, error) {
	email = NormalizeEmail(email)

	// Fast-path duplicate check; the unique index on email is the
	// authoritative guard against concurrent registrations.
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	role, err := s.roles.FindByName(ctx, roleName)
	if err != nil {
		// Bootstrap guarantees both roles exist; a miss here is a broken
		// deployment, not a client error.
		s.logger.Error().Err(err).Str("role", roleName).Msg("role lookup failed during registration")
		return nil, domain.ErrRoleNotConfigured
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		RoleID:       role.ID,
		RoleName:     role.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(email, role.Name)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Str("email", email).Str("role", role.Name).Msg("user registered")

	return &ports.AuthResult{Token: token, RoleName: role.Name}, nil
}

// Login verifies the credentials and issues a token carrying the user's
// stored role.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = NormalizeEmail(email)

	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.Email, user.RoleName)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Str("role", user.RoleName).Msg("user logged in")

	return &ports.AuthResult{Token: token, RoleName: user.RoleName}, nil
}

// NormalizeEmail applies the single canonical form used for uniqueness and
// lookup: trimmed, lower case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
