package part

import (
	"context"
	"fmt"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

// FilterByType returns all parts of one type, unpaginated, ordered by name.
// An unknown type is a field-level validation failure.
func (s *Service) FilterByType(ctx context.Context, rawType string) ([]*domain.Part, error) {
	if err := s.requireRole(ctx); err != nil {
		return nil, err
	}

	t := domain.PartType(rawType)
	if !t.IsValid() {
		return nil, domain.NewValidationError("type", "Type must be one of: "+domain.PartTypeValues())
	}

	parts, err := s.parts.ListByType(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("filter parts by type: %w", err)
	}

	return parts, nil
}
