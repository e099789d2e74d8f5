package part

import (
	"context"
	"fmt"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

// List returns one page of parts. The sort field is checked against the
// allow-list and the page bounds are validated, never silently clamped.
func (s *Service) List(ctx context.Context, pq domain.PageQuery) (domain.Page[*domain.Part], error) {
	var empty domain.Page[*domain.Part]

	if err := s.requireRole(ctx); err != nil {
		return empty, err
	}

	pq.Normalize()
	if err := pq.Validate(SortableFields); err != nil {
		return empty, err
	}

	parts, total, err := s.parts.List(ctx, pq)
	if err != nil {
		return empty, fmt.Errorf("list parts: %w", err)
	}

	return domain.NewPage(parts, pq.Page, pq.Size, total), nil
}
