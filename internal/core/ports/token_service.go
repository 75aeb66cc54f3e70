package ports

import "time"

// TokenClaims is the validated content of a token: who the subject is,
// which role they hold, and the issue/expiry bounds.
type TokenClaims struct {
	Subject   string
	RoleName  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService mints and verifies signed, stateless tokens. Validate must
// collapse every failure mode (bad signature, expired, malformed claims)
// into domain.ErrTokenInvalid so callers cannot distinguish them.
type TokenService interface {
	Issue(subject, roleName string) (string, error)
	Validate(token string) (*TokenClaims, error)
}
