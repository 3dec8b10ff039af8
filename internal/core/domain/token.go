package domain

import "errors"

// Token verification failures. Both resolve to an unauthenticated response at
// the transport layer; the distinction exists for internal diagnostics only.
var ErrInvalidToken = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
