package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientdesk/registry-api/internal/core/domain"
)

// ctxPrincipal rebuilds the acting principal from the claims injected by
// the Auth middleware. Both claims must be present: role proves the
// middleware ran, and document is the ownership key every registry
// operation scopes by. A token missing either claim is rejected with 401.
func ctxPrincipal(c echo.Context) (*domain.User, error) {
	role, _ := c.Get("role").(string)
	document, _ := c.Get("document").(string)
	if role == "" || document == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return &domain.User{Document: document, Role: role}, nil
}
