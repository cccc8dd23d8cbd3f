package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/clientdesk/registry-api/internal/core/domain"
	"github.com/clientdesk/registry-api/internal/core/ports"
)

// ClientService implements the client registry: every read is scoped by
// ownership, every write is authorized against the acting principal, and
// every document field passes checksum validation before persistence.
type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

// Create validates and persists a new client record attributed to the
// acting principal.
func (s *ClientService) Create(ctx context.Context, principal *domain.User, in ports.CreateClientInput) (*domain.Client, error) {
	if !domain.CanCreate(principal) {
		return nil, domain.ErrForbidden
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	document, kind, err := domain.ClassifyDocument(in.Document)
	if err != nil {
		return nil, err
	}

	client := &domain.Client{
		Name:          name,
		Document:      document,
		DocumentKind:  kind,
		Street:        in.Street,
		Number:        in.Number,
		District:      in.District,
		City:          in.City,
		State:         in.State,
		ZipCode:       in.ZipCode,
		Phone:         in.Phone,
		Email:         in.Email,
		OwnerDocument: principal.Document,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create client")
		return nil, err
	}

	s.logger.Info().Str("client_id", created.ID).Str("owner", principal.Document).Msg("client created")
	return created, nil
}

// List returns client records visible to the principal, in insertion
// order: all records for admins, otherwise only records the principal
// created. The scope is applied at the repository, never skipped.
func (s *ClientService) List(ctx context.Context, principal *domain.User) ([]*domain.Client, error) {
	return s.repo.List(ctx, domain.ScopeFor(principal))
}

// Search performs the admin-only flexible lookup. The term matches a
// record when the name contains it (case-insensitive), the document
// equals its normalized form, or the phone contains its normalized form.
// An empty result is a valid empty slice, not an error.
func (s *ClientService) Search(ctx context.Context, principal *domain.User, term string) ([]*domain.Client, error) {
	if !domain.CanSearch(principal) {
		return nil, domain.ErrForbidden
	}

	raw := strings.TrimSpace(term)
	if raw == "" {
		return nil, domain.ErrEmptySearchTerm
	}

	return s.repo.Search(ctx, ports.SearchQuery{
		Raw:        raw,
		Normalized: domain.NormalizeDocument(raw),
	})
}

// Delete removes a client record after checking the pre-mutation record
// against the admin-or-original-owner rule. Deleting an absent id is
// domain.ErrClientNotFound, not a silent no-op.
func (s *ClientService) Delete(ctx context.Context, principal *domain.User, id string) error {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanDelete(principal, client) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("client_id", id).Str("deleted_by", principal.Document).Msg("client deleted")
	return nil
}
