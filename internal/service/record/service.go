// Package record implements the vinyl record collection service.
// Every operation requires the records role; the parts principal is rejected
// even though it is authenticated.
package record

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/languidpie/smit-homework-v2/internal/domain"
	"github.com/languidpie/smit-homework-v2/pkg/ctxutil"
)

type recordRepo interface {
	Create(ctx context.Context, rec *domain.VinylRecord) (*domain.VinylRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VinylRecord, error)
	List(ctx context.Context, pq domain.PageQuery) ([]*domain.VinylRecord, int64, error)
	ListByGenre(ctx context.Context, g domain.Genre) ([]*domain.VinylRecord, error)
	Search(ctx context.Context, query string) ([]*domain.VinylRecord, error)
	Update(ctx context.Context, id uuid.UUID, params domain.RecordUpdateParams) (*domain.VinylRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// SortableFields is the sort allow-list for the records collection. The
// releaseYear entry is the API-facing name; the repository maps it to the
// underlying column.
var SortableFields = []string{"title", "artist", "releaseYear", "genre", "condition"}

// Service provides vinyl record collection operations.
type Service struct {
	records recordRepo
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new record service.
func NewService(log *slog.Logger, records recordRepo, tx txManager) *Service {
	return &Service{
		records: records,
		tx:      tx,
		log:     log.With("service", "record"),
	}
}

// requireRole rejects callers without the records role: 401 when anonymous,
// 403 when authenticated with another role.
func (s *Service) requireRole(ctx context.Context) error {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if p.Role != domain.RoleRecords {
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
