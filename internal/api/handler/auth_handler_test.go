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

	"github.com/clientdesk/registry-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, documentRaw, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, documentRaw, password string) (string, *domain.User, error)
	logoutFn   func(ctx context.Context, token string) error
	resetFn    func(ctx context.Context, documentRaw, newPassword string) error
}

func (s *stubAuthService) Register(ctx context.Context, documentRaw, password string) (*domain.User, error) {
	return s.registerFn(ctx, documentRaw, password)
}

func (s *stubAuthService) Login(ctx context.Context, documentRaw, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, documentRaw, password)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

func (s *stubAuthService) ResetPassword(ctx context.Context, documentRaw, newPassword string) error {
	return s.resetFn(ctx, documentRaw, newPassword)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, documentRaw, password string) (*domain.User, error) {
			if documentRaw != "529.982.247-25" || password != "abc123" {
				t.Fatalf("unexpected args: %s %s", documentRaw, password)
			}
			return &domain.User{ID: "u1", Document: "52998224725", Role: domain.RoleOwner}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/auth/register", `{"document":"529.982.247-25","password":"abc123","confirm_password":"abc123"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["document"] != "52998224725" || user["role"] != domain.RoleOwner {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, documentRaw, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := postJSON(e, "/auth/register", `{"document":"529.982.247-25","password":"abc123","confirm_password":"other"}`)
	err := handler.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, documentRaw, password string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := postJSON(e, "/auth/register", `{"document":"529.982.247-25","password":"abc123","confirm_password":"abc123"}`)
	if err := handler.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists passthrough, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, documentRaw, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := postJSON(e, "/auth/register", "not-json")
	err := handler.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, documentRaw, password string) (string, *domain.User, error) {
			if documentRaw != "52998224725" || password != "abc123" {
				t.Fatalf("unexpected args: %s %s", documentRaw, password)
			}
			return "token123", &domain.User{Document: "52998224725", Role: domain.RoleOwner}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/auth/login", `{"document":"52998224725","password":"abc123"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["role"] != domain.RoleOwner {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, documentRaw, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := postJSON(e, "/auth/login", `{"document":"52998224725","password":"bad"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials passthrough, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newTestEcho()
	var revoked string
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, token string) error {
			revoked = token
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/auth/logout", "")
	c.Set("token", "token123")
	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoked != "token123" {
		t.Fatalf("expected token123 revoked, got %q", revoked)
	}
}

func TestAuthHandler_Logout_MissingToken(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, token string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := postJSON(e, "/auth/logout", "")
	err := handler.Logout(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		resetFn: func(ctx context.Context, documentRaw, newPassword string) error {
			if documentRaw != "529.982.247-25" || newPassword != "newpass" {
				t.Fatalf("unexpected args: %s %s", documentRaw, newPassword)
			}
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/auth/reset", `{"document":"529.982.247-25","new_password":"newpass"}`)
	if err := handler.ResetPassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_ResetPassword_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		resetFn: func(ctx context.Context, documentRaw, newPassword string) error {
			return domain.ErrUserNotFound
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := postJSON(e, "/auth/reset", `{"document":"111.444.777-35","new_password":"newpass"}`)
	if err := handler.ResetPassword(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound passthrough, got %v", err)
	}
}
