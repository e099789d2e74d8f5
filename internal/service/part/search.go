package part

import (
	"context"
	"fmt"
	"strings"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

// Search returns parts whose name or description contains the query as a
// literal substring, case-insensitively. The repository escapes pattern
// metacharacters, so wildcards in the query never widen the match.
func (s *Service) Search(ctx context.Context, query string) ([]*domain.Part, error) {
	if err := s.requireRole(ctx); err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("q", "Search query must not be blank")
	}

	parts, err := s.parts.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search parts: %w", err)
	}

	return parts, nil
}
