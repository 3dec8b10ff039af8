package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vaais251/GB-Guide/internal/core/domain"
	"github.com/vaais251/GB-Guide/internal/core/ports"
)

// stubAuthService implements ports.AuthService with canned responses.
type stubAuthService struct {
	registerUser *domain.User
	registerErr  error
	loginToken   string
	loginUser    *domain.User
	loginErr     error
}

func (s *stubAuthService) Register(context.Context, ports.RegisterInput) (*domain.User, error) {
	return s.registerUser, s.registerErr
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	return s.loginToken, s.loginUser, s.loginErr
}

func newAuthTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{
		registerUser: &domain.User{ID: 1, Email: "ali@example.com", Role: domain.RoleCustomer},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthTestContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"ali@example.com","password":"pass1234","full_name":"Ali Khan"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.ID != 1 || user.Email != "ali@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response must not expose password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_ValidationFailures(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"pass1234","full_name":"Ali"}`},
		{"bad email", `{"email":"not-an-email","password":"pass1234","full_name":"Ali"}`},
		{"short password", `{"email":"a@b.c","password":"short","full_name":"Ali"}`},
		{"unknown role", `{"email":"a@b.c","password":"pass1234","full_name":"Ali","role":"superuser"}`},
		{"malformed json", `{"email":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newAuthTestContext(t, http.MethodPost, "/api/auth/register", tc.body)
			err := h.Register(c)

			var httpErr *echo.HTTPError
			if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Register_DuplicateEmailPropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})

	c, _ := newAuthTestContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"dup@example.com","password":"pass1234","full_name":"Dup"}`)

	// conflict mapping happens in the central error handler
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{
		loginToken: "signed-token",
		loginUser:  &domain.User{ID: 1, Email: "ali@example.com"},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"ali@example.com","password":"pass1234"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken != "signed-token" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected token response: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentialsPropagate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	c, _ := newAuthTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"ali@example.com","password":"wrong-pass"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newAuthTestContext(t, http.MethodGet, "/api/auth/me", "")
	c.Set("identity", &domain.User{ID: 5, Email: "me@example.com"})

	if err := h.Me(c); err != nil {
		t.Fatalf("me failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Me_NoIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthTestContext(t, http.MethodGet, "/api/auth/me", "")
	err := h.Me(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %v", err)
	}
}
