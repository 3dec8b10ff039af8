package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vaais251/GB-Guide/internal/api/middleware"
	"github.com/vaais251/GB-Guide/internal/core/domain"
)

// currentUser extracts the identity injected by the Auth middleware and
// fails closed when it is absent: a protected handler reached without a
// resolved identity is a wiring bug, and the request must not proceed as a
// guest.
func currentUser(c echo.Context) (*domain.User, error) {
	user := middleware.Identity(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
	}
	return user, nil
}
