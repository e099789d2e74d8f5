package record

import (
	"context"
	"fmt"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

// FilterByGenre returns all records of one genre, unpaginated, ordered by
// title. An unknown genre is a field-level validation failure.
func (s *Service) FilterByGenre(ctx context.Context, rawGenre string) ([]*domain.VinylRecord, error) {
	if err := s.requireRole(ctx); err != nil {
		return nil, err
	}

	g := domain.Genre(rawGenre)
	if !g.IsValid() {
		return nil, domain.NewValidationError("genre", "Genre must be one of: "+domain.GenreValues())
	}

	records, err := s.records.ListByGenre(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("filter records by genre: %w", err)
	}

	return records, nil
}
