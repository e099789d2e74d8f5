package part

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

// Update applies a partial update: absent fields stay untouched, present
// optional text fields may be cleared with an empty string, updated_at is
// refreshed. The fetch and write run in one transaction so a concurrent
// delete surfaces as NotFound rather than a resurrected row.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in Input) (*domain.Part, error) {
	if err := s.requireRole(ctx); err != nil {
		return nil, err
	}

	if err := in.ValidateUpdate(); err != nil {
		return nil, err
	}

	params := in.updateParams()

	var updated *domain.Part
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, getErr := s.parts.GetByID(txCtx, id); getErr != nil {
			return getErr
		}

		var updateErr error
		updated, updateErr = s.parts.Update(txCtx, id, params)
		if updateErr != nil {
			return fmt.Errorf("update part: %w", updateErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "part updated",
		slog.String("part_id", id.String()),
	)

	return updated, nil
}
