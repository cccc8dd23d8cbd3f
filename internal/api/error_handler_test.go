package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clientdesk/registry-api/internal/core/domain"
)

func TestResolveErrorDomainMappings(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidDocument, http.StatusUnprocessableEntity},
		{domain.ErrNameRequired, http.StatusUnprocessableEntity},
		{domain.ErrPasswordRequired, http.StatusUnprocessableEntity},
		{domain.ErrEmptySearchTerm, http.StatusUnprocessableEntity},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrClientNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, msg := resolveError(tc.err, zerolog.Nop(), c)
		if code != tc.code {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.code, code)
		}
		if msg == "" {
			t.Fatalf("%v: empty message", tc.err)
		}
	}
}

// Credential failures must not reveal whether the account exists.
func TestResolveErrorDoesNotLeakAccountExistence(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, msg := resolveError(domain.ErrInvalidCredentials, zerolog.Nop(), c)
	if msg != "invalid credentials" {
		t.Fatalf("unexpected credential failure message: %q", msg)
	}
}
