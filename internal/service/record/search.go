package record

import (
	"context"
	"fmt"
	"strings"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

// Search returns records whose title or artist contains the query as a
// literal substring, case-insensitively. The repository escapes pattern
// metacharacters, so wildcards in the query never widen the match.
func (s *Service) Search(ctx context.Context, query string) ([]*domain.VinylRecord, error) {
	if err := s.requireRole(ctx); err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("q", "Search query must not be blank")
	}

	records, err := s.records.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search records: %w", err)
	}

	return records, nil
}
