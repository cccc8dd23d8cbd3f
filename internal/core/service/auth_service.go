package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/clientdesk/registry-api/internal/core/domain"
	"github.com/clientdesk/registry-api/internal/core/ports"
)

// AuthService implements account registration, login with transparent
// legacy-credential migration, logout, and credential reset.
type AuthService struct {
	users     ports.UserRepository
	denylist  ports.TokenDenylist
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, denylist ports.TokenDenylist, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, denylist: denylist, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register creates a new owner account keyed by a valid CPF. Document
// uniqueness is enforced by the repository's storage constraint, so
// concurrent registrations of the same document yield exactly one success
// and domain.ErrUserExists for the rest.
func (s *AuthService) Register(ctx context.Context, documentRaw, password string) (*domain.User, error) {
	document := domain.NormalizeDocument(documentRaw)
	if !domain.IsValidCPF(document) {
		return nil, domain.ErrInvalidDocument
	}
	if password == "" {
		return nil, domain.ErrPasswordRequired
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Document:     document,
		PasswordHash: hash,
		Role:         domain.RoleOwner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("document", created.Document).Msg("account registered")
	return created, nil
}

// Login authenticates by normalized document and password, returning a
// signed session token. An unknown document and a wrong password both
// surface domain.ErrInvalidCredentials so responses do not reveal which
// accounts exist. A matching legacy plaintext credential is upgraded to
// a bcrypt hash and persisted before the token is issued.
func (s *AuthService) Login(ctx context.Context, documentRaw, password string) (string, *domain.User, error) {
	document := domain.NormalizeDocument(documentRaw)
	if document == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByDocument(ctx, document)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	ok, upgraded, err := Authenticate(password, user.PasswordHash)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, domain.ErrInvalidCredentials
	}

	if upgraded != "" {
		if err := s.users.UpdatePasswordHash(ctx, user.ID, upgraded); err != nil {
			return "", nil, err
		}
		user.PasswordHash = upgraded
		s.logger.Info().Str("document", user.Document).Msg("legacy credential upgraded to bcrypt")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout revokes the session token until its natural expiry. Already
// expired or unparseable tokens are rejected with
// domain.ErrInvalidCredentials.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return domain.ErrInvalidCredentials
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return domain.ErrInvalidCredentials
	}
	// Keep sub-second remainders: the middleware still accepts the token
	// until the exact expiry instant, so the denylist entry must too.
	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return nil
	}
	return s.denylist.Revoke(ctx, token, ttl)
}

// ResetPassword unconditionally replaces the credential of the account
// matching the given document. Identity proof beyond the validated
// document is the hosting process's responsibility.
func (s *AuthService) ResetPassword(ctx context.Context, documentRaw, newPassword string) error {
	document := domain.NormalizeDocument(documentRaw)
	if !domain.IsValidCPF(document) {
		return domain.ErrInvalidDocument
	}
	if newPassword == "" {
		return domain.ErrPasswordRequired
	}

	user, err := s.users.FindByDocument(ctx, document)
	if err != nil {
		return err
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return err
	}

	s.logger.Info().Str("document", user.Document).Msg("credential reset")
	return nil
}

// EnsureAdmin creates the administrator account when it does not exist
// yet. Intended for startup seeding by the hosting process. Losing the
// race against a concurrent seed is not an error.
func (s *AuthService) EnsureAdmin(ctx context.Context, documentRaw, password string) error {
	document := domain.NormalizeDocument(documentRaw)
	if !domain.IsValidCPF(document) {
		return domain.ErrInvalidDocument
	}

	if _, err := s.users.FindByDocument(ctx, document); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = s.users.Create(ctx, &domain.User{
		Document:     document,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	return err
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"document": user.Document,
		"role":     user.Role,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
