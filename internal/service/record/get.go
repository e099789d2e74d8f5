package record

import (
	"context"

	"github.com/google/uuid"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

// Get returns a record by id, or NotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.VinylRecord, error) {
	if err := s.requireRole(ctx); err != nil {
		return nil, err
	}

	return s.records.GetByID(ctx, id)
}
