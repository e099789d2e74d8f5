package record

import (
	"context"
	"fmt"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

// List returns one page of records. The sort field is checked against the
// allow-list and the page bounds are validated, never silently clamped.
func (s *Service) List(ctx context.Context, pq domain.PageQuery) (domain.Page[*domain.VinylRecord], error) {
	var empty domain.Page[*domain.VinylRecord]

	if err := s.requireRole(ctx); err != nil {
		return empty, err
	}

	pq.Normalize()
	if err := pq.Validate(SortableFields); err != nil {
		return empty, err
	}

	records, total, err := s.records.List(ctx, pq)
	if err != nil {
		return empty, fmt.Errorf("list records: %w", err)
	}

	return domain.NewPage(records, pq.Page, pq.Size, total), nil
}
