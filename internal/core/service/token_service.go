package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/authcore/identity-service/internal/core/domain"
	"github.com/authcore/identity-service/internal/core/ports"
)

// JWTTokenService issues and validates HS256-signed tokens carrying the
// subject, role, issued-at and expiry claims. It is purely functional over
// its input and the process-wide signing secret.
type JWTTokenService struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewJWTTokenService(secret string, tokenTTL time.Duration) *JWTTokenService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &JWTTokenService{secret: []byte(secret), tokenTTL: tokenTTL}
}

func (s *JWTTokenService) Issue(subject, roleName string) (string, error) {
	return s.IssueWithTTL(subject, roleName, s.tokenTTL)
}

// IssueWithTTL mints a token with an explicit validity window instead of the
// configured one.
func (s *JWTTokenService) IssueWithTTL(subject, roleName string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": roleName,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate checks signature, expiry and claim structure. Every failure
// collapses to domain.ErrTokenInvalid; callers never learn which check
// rejected the token.
func (s *JWTTokenService) Validate(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || !domain.ValidRoleName(role) {
		return nil, domain.ErrTokenInvalid
	}

	iat, err := claims.GetIssuedAt()
	if err != nil || iat == nil {
		return nil, domain.ErrTokenInvalid
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domain.ErrTokenInvalid
	}

	return &ports.TokenClaims{
		Subject:   sub,
		RoleName:  role,
		IssuedAt:  iat.Time,
		ExpiresAt: exp.Time,
	}, nil
}
