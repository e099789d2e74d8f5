package part

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

// Create validates the payload and persists a new part. The id and both
// timestamps are server-assigned; no write happens when any field fails.
func (s *Service) Create(ctx context.Context, in Input) (*domain.Part, error) {
	if err := s.requireRole(ctx); err != nil {
		return nil, err
	}

	if err := in.ValidateCreate(); err != nil {
		return nil, err
	}

	created, err := s.parts.Create(ctx, &domain.Part{
		Name:        strings.TrimSpace(*in.Name),
		Description: trimOrNil(in.Description),
		Type:        domain.PartType(*in.Type),
		Location:    strings.TrimSpace(*in.Location),
		Quantity:    *in.Quantity,
		Condition:   domain.PartCondition(*in.Condition),
		Notes:       trimOrNil(in.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("create part: %w", err)
	}

	s.log.InfoContext(ctx, "part created",
		slog.String("part_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}
