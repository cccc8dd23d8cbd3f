package ports

import (
	"context"

	"github.com/clientdesk/registry-api/internal/core/domain"
)

// SearchQuery carries the two shapes of a search term: Raw for the
// case-insensitive name match, Normalized (digits only) for the exact
// document and phone-substring branches.
type SearchQuery struct {
	Raw        string
	Normalized string
}

// ClientRepository defines persistence for client records.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
	// List returns records in insertion order, restricted by scope.
	List(ctx context.Context, scope domain.ListScope) ([]*domain.Client, error)
	// Search matches any of: name contains Raw (case-insensitive),
	// document equals Normalized, phone contains Normalized.
	Search(ctx context.Context, q SearchQuery) ([]*domain.Client, error)
}
