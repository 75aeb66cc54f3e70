package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/authcore/identity-service/internal/core/domain"
	"github.com/authcore/identity-service/internal/core/ports"
)

// Authenticator verifies email/password pairs against the user store.
//
// Unknown email and wrong password both fail with the same
// domain.ErrInvalidCredentials: the caller must not be able to probe which
// emails are registered through the login path.
type Authenticator struct {
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	throttle ports.LoginThrottle // optional
	logger   zerolog.Logger
}

func NewAuthenticator(users ports.UserRepository, hasher ports.PasswordHasher, throttle ports.LoginThrottle, logger zerolog.Logger) *Authenticator {
	return &Authenticator{users: users, hasher: hasher, throttle: throttle, logger: logger}
}

// Authenticate returns the matching user or domain.ErrInvalidCredentials.
// When a throttle is configured and the account key is locked out, it fails
// with domain.ErrTooManyAttempts without touching the hasher.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if a.throttle != nil {
		ok, err := a.throttle.Allow(ctx, email)
		if err != nil {
			// A broken throttle must not lock everyone out.
			a.logger.Warn().Err(err).Msg("login throttle unavailable, skipping check")
		} else if !ok {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			a.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if a.throttle != nil {
		if err := a.throttle.Reset(ctx, email); err != nil {
			a.logger.Warn().Err(err).Msg("failed to reset login throttle")
		}
	}
	return user, nil
}

func (a *Authenticator) recordFailure(ctx context.Context, email string) {
	if a.throttle == nil {
		return
	}
	if err := a.throttle.RecordFailure(ctx, email); err != nil {
		a.logger.Warn().Err(err).Msg("failed to record login failure")
	}
}
