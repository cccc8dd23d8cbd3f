package ports

import (
	"context"

	"github.com/clientdesk/registry-api/internal/core/domain"
)

// CreateClientInput carries the fields of a new client record. Document
// may arrive formatted ("529.982.247-25"); the service normalizes and
// validates it before persisting.
type CreateClientInput struct {
	Name     string
	Document string
	Street   string
	Number   string
	District string
	City     string
	State    string
	ZipCode  string
	Phone    string
	Email    string
}

// ClientService is the access-controlled registry of client records.
// Every operation takes the acting principal explicitly; there is no
// ambient caller identity.
type ClientService interface {
	Create(ctx context.Context, principal *domain.User, in CreateClientInput) (*domain.Client, error)
	List(ctx context.Context, principal *domain.User) ([]*domain.Client, error)
	Search(ctx context.Context, principal *domain.User, term string) ([]*domain.Client, error)
	Delete(ctx context.Context, principal *domain.User, id string) error
}
