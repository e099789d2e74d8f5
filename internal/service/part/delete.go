package part

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Delete removes a part after confirming it exists. Repeating a delete on an
// already-deleted id yields NotFound, never success.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.requireRole(ctx); err != nil {
		return err
	}

	var name string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		part, getErr := s.parts.GetByID(txCtx, id)
		if getErr != nil {
			return getErr
		}
		name = part.Name

		if deleteErr := s.parts.Delete(txCtx, id); deleteErr != nil {
			return fmt.Errorf("delete part: %w", deleteErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "part deleted",
		slog.String("part_id", id.String()),
		slog.String("name", name),
	)

	return nil
}
