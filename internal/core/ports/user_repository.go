package ports

import (
	"context"

	"github.com/vaais251/GB-Guide/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Insert persists a new user, assigning its numeric id.
	// Returns domain.ErrUserExists when the email is already taken.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
}
