package ports

import "context"

// AuthResult is returned by every flow that mints a token.
type AuthResult struct {
	Token    string
	RoleName string
}

// AuthService orchestrates registration and login.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	RegisterAdmin(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
