// Package record implements the vinyl record repository using PostgreSQL.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/languidpie/smit-homework-v2/internal/adapter/postgres"
	"github.com/languidpie/smit-homework-v2/internal/domain"
)

const table = "vinyl_records"

var columns = []string{
	"id", "title", "artist", "release_year", "genre", "purchase_source",
	"purchase_date", "condition", "notes", "created_at", "updated_at",
}

// Repo provides vinyl record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// sortColumn maps an API sort field name to its column. The allow-list is
// enforced by the service; anything else falls back to the stable default.
func sortColumn(field string) string {
	switch field {
	case "title", "artist", "genre", "condition":
		return field
	case "releaseYear":
		return "release_year"
	default:
		return "id"
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a record by primary key.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VinylRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder().Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get record: %w", err)
	}

	rec, err := scanRecord(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "VinylRecord", id)
	}

	return rec, nil
}

// List returns one page of records plus the total count of the whole set.
func (r *Repo) List(ctx context.Context, pq domain.PageQuery) ([]*domain.VinylRecord, int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	order := fmt.Sprintf("%s %s", sortColumn(pq.Sort), pq.Direction)
	sql, args, err := builder().Select(columns...).From(table).
		OrderBy(order).
		Limit(uint64(pq.Size)).
		Offset(uint64(pq.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list records: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list records: %w", err)
	}

	countSQL, countArgs, err := builder().Select("count(*)").From(table).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count records: %w", err)
	}

	var total int64
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count records: %w", err)
	}

	return records, total, nil
}

// ListByGenre returns all records of the given genre ordered by title.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) ListByGenre(ctx context.Context, g domain.Genre) ([]*domain.VinylRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder().Select(columns...).From(table).
		Where(squirrel.Eq{"genre": g}).
		OrderBy("title ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list records by genre: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list records by genre: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("list records by genre: %w", err)
	}

	return records, nil
}

// Search returns records whose title or artist contains the query as a
// literal, case-insensitive substring.
func (r *Repo) Search(ctx context.Context, query string) ([]*domain.VinylRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	pattern := postgres.ContainsPattern(postgres.EscapeLike(query))
	sql, args, err := builder().Select(columns...).From(table).
		Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"artist": pattern},
		}).
		OrderBy("title ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search records: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search records: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("search records: %w", err)
	}

	return records, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new record. The id and both timestamps are assigned by the
// database.
func (r *Repo) Create(ctx context.Context, rec *domain.VinylRecord) (*domain.VinylRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder().Insert(table).
		Columns("title", "artist", "release_year", "genre", "purchase_source",
			"purchase_date", "condition", "notes").
		Values(rec.Title, rec.Artist, rec.ReleaseYear, rec.Genre,
			textOrNull(rec.PurchaseSource), dateOrNull(rec.PurchaseDate),
			rec.Condition, textOrNull(rec.Notes)).
		Suffix("RETURNING " + allColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create record: %w", err)
	}

	created, err := scanRecord(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "VinylRecord", uuid.Nil)
	}

	return created, nil
}

// Update applies a partial update and refreshes updated_at.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.RecordUpdateParams) (*domain.VinylRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := builder().Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + allColumns())

	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Artist != nil {
		update = update.Set("artist", *params.Artist)
	}
	if params.ReleaseYear != nil {
		update = update.Set("release_year", *params.ReleaseYear)
	}
	if params.Genre != nil {
		update = update.Set("genre", *params.Genre)
	}
	if params.PurchaseSource != nil {
		update = update.Set("purchase_source", clearableText(*params.PurchaseSource))
	}
	if params.PurchaseDate != nil {
		update = update.Set("purchase_date", pgtype.Date{Time: *params.PurchaseDate, Valid: true})
	}
	if params.Condition != nil {
		update = update.Set("condition", *params.Condition)
	}
	if params.Notes != nil {
		update = update.Set("notes", clearableText(*params.Notes))
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update record: %w", err)
	}

	updated, err := scanRecord(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "VinylRecord", id)
	}

	return updated, nil
}

// Delete removes a record.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder().Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete record: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "VinylRecord", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("VinylRecord", id.String())
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func allColumns() string {
	s := columns[0]
	for _, c := range columns[1:] {
		s += ", " + c
	}
	return s
}

func scanRecord(row pgx.Row) (*domain.VinylRecord, error) {
	var (
		id                   uuid.UUID
		title                string
		artist               string
		releaseYear          int
		genre                string
		purchaseSource       pgtype.Text
		purchaseDate         pgtype.Date
		condition            string
		notes                pgtype.Text
		createdAt, updatedAt time.Time
	)

	err := row.Scan(&id, &title, &artist, &releaseYear, &genre, &purchaseSource,
		&purchaseDate, &condition, &notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return &domain.VinylRecord{
		ID:             id,
		Title:          title,
		Artist:         artist,
		ReleaseYear:    releaseYear,
		Genre:          domain.Genre(genre),
		PurchaseSource: textToPtr(purchaseSource),
		PurchaseDate:   dateToPtr(purchaseDate),
		Condition:      domain.RecordCondition(condition),
		Notes:          textToPtr(notes),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}

func scanRecords(rows pgx.Rows) ([]*domain.VinylRecord, error) {
	var result []*domain.VinylRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.VinylRecord{}
	}

	return result, nil
}

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func dateToPtr(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

func textOrNull(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func dateOrNull(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

// clearableText maps the empty string to NULL: on partial updates a present
// empty value means "clear this field".
func clearableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
