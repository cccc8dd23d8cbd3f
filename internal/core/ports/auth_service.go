package ports

import (
	"context"
	"time"

	"github.com/clientdesk/registry-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, documentRaw, password string) (*domain.User, error)
	Login(ctx context.Context, documentRaw, password string) (string, *domain.User, error)
	Logout(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, documentRaw, newPassword string) error
}

// TokenDenylist records session tokens revoked before their natural
// expiry (logout). TTL is the token's remaining lifetime and may be
// shorter than a second.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
