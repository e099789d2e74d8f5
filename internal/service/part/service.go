// Package part implements the bicycle parts resource service.
// Every operation requires the parts role; the records principal is rejected
// even though it is authenticated.
package part

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/languidpie/smit-homework-v2/internal/domain"
	"github.com/languidpie/smit-homework-v2/pkg/ctxutil"
)

type partRepo interface {
	Create(ctx context.Context, p *domain.Part) (*domain.Part, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Part, error)
	List(ctx context.Context, pq domain.PageQuery) ([]*domain.Part, int64, error)
	ListByType(ctx context.Context, t domain.PartType) ([]*domain.Part, error)
	Search(ctx context.Context, query string) ([]*domain.Part, error)
	Update(ctx context.Context, id uuid.UUID, params domain.PartUpdateParams) (*domain.Part, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// SortableFields is the sort allow-list for the parts collection.
var SortableFields = []string{"name", "type", "location", "quantity", "condition"}

// Service provides part inventory operations.
type Service struct {
	parts partRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new part service.
func NewService(log *slog.Logger, parts partRepo, tx txManager) *Service {
	return &Service{
		parts: parts,
		tx:    tx,
		log:   log.With("service", "part"),
	}
}

// requireRole rejects callers without the parts role: 401 when anonymous,
// 403 when authenticated with another role.
func (s *Service) requireRole(ctx context.Context) error {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if p.Role != domain.RoleParts {
		return domain.ErrForbidden
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if the result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// trimmed trims whitespace, keeping an empty result as the explicit
// "clear this field" sentinel.
func trimmed(s *string) *string {
	t := strings.TrimSpace(*s)
	return &t
}
