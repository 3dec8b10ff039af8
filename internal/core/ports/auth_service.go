package ports

import (
	"context"

	"github.com/vaais251/GB-Guide/internal/core/domain"
)

// RegisterInput carries all data needed to create a new user account.
type RegisterInput struct {
	Email       string
	Password    string
	FullName    string
	City        string
	PhoneNumber string
	// Role must belong to the closed role set; empty defaults to customer.
	Role string
}

// AuthService defines credential-handling use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies email+password and returns a signed access token.
	// Unknown email and wrong password fail identically with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// IdentityResolver turns a bearer token into the authenticated user.
// Every failure mode (malformed, expired, wrong signature, deleted user)
// surfaces as domain.ErrUnauthenticated.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}
