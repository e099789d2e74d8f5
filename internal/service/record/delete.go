package record

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Delete removes a record after confirming it exists. Repeating a delete on
// an already-deleted id yields NotFound, never success.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.requireRole(ctx); err != nil {
		return err
	}

	var title string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, getErr := s.records.GetByID(txCtx, id)
		if getErr != nil {
			return getErr
		}
		title = rec.Title

		if deleteErr := s.records.Delete(txCtx, id); deleteErr != nil {
			return fmt.Errorf("delete record: %w", deleteErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "record deleted",
		slog.String("record_id", id.String()),
		slog.String("title", title),
	)

	return nil
}
