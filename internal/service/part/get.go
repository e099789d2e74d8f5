package part

import (
	"context"

	"github.com/google/uuid"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

// Get returns a part by id, or NotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Part, error) {
	if err := s.requireRole(ctx); err != nil {
		return nil, err
	}

	return s.parts.GetByID(ctx, id)
}
