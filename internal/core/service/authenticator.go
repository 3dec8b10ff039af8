package service

import (
	"context"
	"errors"

	"github.com/vaais251/GB-Guide/internal/core/domain"
	"github.com/vaais251/GB-Guide/internal/core/ports"
)

// Authenticator resolves bearer tokens into users. It is the single gate
// between the network and all protected handlers: a malformed or expired
// token, a bad signature and a token whose user no longer exists all resolve
// to domain.ErrUnauthenticated, so callers cannot distinguish the cases.
// There is no guest fallback.
type Authenticator struct {
	codec *TokenCodec
	users ports.UserRepository
}

func NewAuthenticator(codec *TokenCodec, users ports.UserRepository) *Authenticator {
	return &Authenticator{codec: codec, users: users}
}

// Resolve implements ports.IdentityResolver.
func (a *Authenticator) Resolve(ctx context.Context, token string) (*domain.User, error) {
	id, err := a.codec.Verify(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := a.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}
