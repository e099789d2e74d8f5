package record

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

// Create validates the payload and persists a new record. The id and both
// timestamps are server-assigned; no write happens when any field fails.
func (s *Service) Create(ctx context.Context, in Input) (*domain.VinylRecord, error) {
	if err := s.requireRole(ctx); err != nil {
		return nil, err
	}

	if err := in.ValidateCreate(); err != nil {
		return nil, err
	}

	created, err := s.records.Create(ctx, &domain.VinylRecord{
		Title:          strings.TrimSpace(*in.Title),
		Artist:         strings.TrimSpace(*in.Artist),
		ReleaseYear:    *in.ReleaseYear,
		Genre:          domain.Genre(*in.Genre),
		PurchaseSource: trimOrNil(in.PurchaseSource),
		PurchaseDate:   in.purchaseDate(),
		Condition:      domain.RecordCondition(*in.Condition),
		Notes:          trimOrNil(in.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}

	s.log.InfoContext(ctx, "record created",
		slog.String("record_id", created.ID.String()),
		slog.String("title", created.Title),
		slog.String("artist", created.Artist),
	)

	return created, nil
}
