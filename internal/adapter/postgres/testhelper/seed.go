package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedPart inserts a part with sane defaults, applying any overrides, and
// returns the stored row.
func SeedPart(t *testing.T, pool *pgxpool.Pool, override func(*domain.Part)) domain.Part {
	t.Helper()
	ctx := context.Background()

	part := domain.Part{
		Name:      "Test part " + uniqueSuffix(),
		Type:      domain.PartTypeBrake,
		Location:  "Shelf " + uniqueSuffix(),
		Quantity:  1,
		Condition: domain.PartConditionNew,
	}
	if override != nil {
		override(&part)
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO parts (name, description, type, location, quantity, condition, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		part.Name, part.Description, string(part.Type), part.Location,
		part.Quantity, string(part.Condition), part.Notes,
	).Scan(&part.ID, &part.CreatedAt, &part.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedPart insert: %v", err)
	}

	return part
}

// SeedRecord inserts a vinyl record with sane defaults, applying any
// overrides, and returns the stored row.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, override func(*domain.VinylRecord)) domain.VinylRecord {
	t.Helper()
	ctx := context.Background()

	rec := domain.VinylRecord{
		Title:       "Test record " + uniqueSuffix(),
		Artist:      "Test artist " + uniqueSuffix(),
		ReleaseYear: 1984,
		Genre:       domain.GenreRock,
		Condition:   domain.RecordConditionGood,
	}
	if override != nil {
		override(&rec)
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO vinyl_records (title, artist, release_year, genre, purchase_source, purchase_date, condition, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		rec.Title, rec.Artist, rec.ReleaseYear, string(rec.Genre),
		rec.PurchaseSource, rec.PurchaseDate, string(rec.Condition), rec.Notes,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert: %v", err)
	}

	return rec
}

// TruncateInventory wipes both inventory tables between tests that need a
// clean slate.
func TruncateInventory(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `TRUNCATE parts, vinyl_records`); err != nil {
		t.Fatalf("testhelper: truncate: %v", err)
	}
}
