package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clientdesk/registry-api/internal/api/metrics"
	"github.com/clientdesk/registry-api/internal/core/domain"
	"github.com/clientdesk/registry-api/internal/core/ports"
)

// ClientHandler handles HTTP requests for client registry operations.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Create handles POST /v1/clients.
//
// @Summary      Register a new client record
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  clientItem
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	client, err := h.service.Create(c.Request().Context(), principal, ports.CreateClientInput{
		Name:     req.Name,
		Document: req.Document,
		Street:   req.Street,
		Number:   req.Number,
		District: req.District,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
		Phone:    req.Phone,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}

	metrics.ClientsCreatedTotal.WithLabelValues(string(client.DocumentKind)).Inc()
	return c.JSON(http.StatusCreated, toClientItem(client))
}

// List handles GET /v1/clients, returning records visible to the caller.
//
// @Summary      List client records
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listClientsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	clients, err := h.service.List(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(clients))
}

// Search handles POST /v1/clients/search, the admin-only flexible lookup.
//
// @Summary      Search client records
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      searchClientsRequest  true  "Search term"
// @Success      200   {object}  listClientsResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/clients/search [post]
func (h *ClientHandler) Search(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req searchClientsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	clients, err := h.service.Search(c.Request().Context(), principal, req.Term)
	if err != nil {
		return err
	}

	metrics.ClientSearchesTotal.Inc()
	return c.JSON(http.StatusOK, toListResponse(clients))
}

// Delete handles DELETE /v1/clients/:id.
//
// @Summary      Delete a client record
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Client record id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal, c.Param("id")); err != nil {
		metrics.ClientDeletesTotal.WithLabelValues(deleteResult(err)).Inc()
		return err
	}

	metrics.ClientDeletesTotal.WithLabelValues("success").Inc()
	return c.NoContent(http.StatusNoContent)
}

func toClientItem(cl *domain.Client) clientItem {
	return clientItem{
		ID:           cl.ID,
		Name:         cl.Name,
		Document:     cl.Document,
		DocumentKind: string(cl.DocumentKind),
		Street:       cl.Street,
		Number:       cl.Number,
		District:     cl.District,
		City:         cl.City,
		State:        cl.State,
		ZipCode:      cl.ZipCode,
		Phone:        cl.Phone,
		Email:        cl.Email,
		OwnerDoc:     cl.OwnerDocument,
		CreatedAt:    cl.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toListResponse(clients []*domain.Client) listClientsResponse {
	items := make([]clientItem, 0, len(clients))
	for _, cl := range clients {
		items = append(items, toClientItem(cl))
	}
	return listClientsResponse{Data: items, Count: len(items)}
}

func deleteResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrClientNotFound):
		return "not_found"
	default:
		return "error"
	}
}
