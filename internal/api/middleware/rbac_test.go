package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vaais251/GB-Guide/internal/core/domain"
)

func invokeRBAC(t *testing.T, user *domain.User, allowed ...string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/hotels", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(identityKey, user)
	}
	return RequireRoles(allowed...)(okHandler)(c)
}

func TestRequireRoles_Allowed(t *testing.T) {
	user := &domain.User{ID: 1, Role: domain.RoleHotelOwner}
	if err := invokeRBAC(t, user, domain.RoleHotelOwner, domain.RoleAdmin); err != nil {
		t.Fatalf("expected role to pass, got %v", err)
	}
}

func TestRequireRoles_AdminInSet(t *testing.T) {
	user := &domain.User{ID: 1, Role: domain.RoleAdmin}
	if err := invokeRBAC(t, user, domain.RoleHotelOwner, domain.RoleAdmin); err != nil {
		t.Fatalf("expected admin to pass, got %v", err)
	}
}

func TestRequireRoles_Forbidden(t *testing.T) {
	user := &domain.User{ID: 1, Role: domain.RoleCustomer}
	err := invokeRBAC(t, user, domain.RoleHotelOwner, domain.RoleAdmin)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", httpErr.Code)
	}
	msg, ok := httpErr.Message.(string)
	if !ok || !strings.Contains(msg, `role "customer"`) || !strings.Contains(msg, domain.RoleHotelOwner) {
		t.Fatalf("message must name the role and the allowed set, got %v", httpErr.Message)
	}
}

func TestRequireRoles_NoIdentity(t *testing.T) {
	// composed without Auth there is no identity; that is 401, not 403
	err := invokeRBAC(t, nil, domain.RoleAdmin)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", httpErr.Code)
	}
}
