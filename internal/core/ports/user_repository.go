package ports

import (
	"context"

	"github.com/clientdesk/registry-api/internal/core/domain"
)

// UserRepository defines persistence for account principals. Create must
// enforce document uniqueness at the storage layer (returning
// domain.ErrUserExists on duplicates) so concurrent registrations cannot
// both succeed.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByDocument(ctx context.Context, document string) (*domain.User, error)
	// UpdatePasswordHash replaces the stored credential in a single
	// write. Used for both reset and legacy-plaintext migration.
	UpdatePasswordHash(ctx context.Context, id, hash string) error
}
