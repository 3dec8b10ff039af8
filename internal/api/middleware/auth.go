package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vaais251/GB-Guide/internal/api/metrics"
	"github.com/vaais251/GB-Guide/internal/core/domain"
	"github.com/vaais251/GB-Guide/internal/core/ports"
)

const identityKey = "identity"

// Auth authenticates the request's bearer token and injects the resolved user
// into the echo context. Missing, malformed, expired and revoked-user tokens
// all fail with the same 401 response and a WWW-Authenticate hint.
func Auth(resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return unauthenticated(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthenticated(c)
			}

			user, err := resolver.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					return unauthenticated(c)
				}
				// store failure, not an auth decision
				return err
			}

			c.Set(identityKey, user)
			return next(c)
		}
	}
}

// Identity returns the user injected by Auth, or nil when the request never
// passed through it.
func Identity(c echo.Context) *domain.User {
	user, _ := c.Get(identityKey).(*domain.User)
	return user
}

func unauthenticated(c echo.Context) error {
	metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
}
