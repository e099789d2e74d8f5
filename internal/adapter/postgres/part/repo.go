// Package part implements the bicycle part repository using PostgreSQL.
package part

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

const table = "parts"

var columns = []string{
	"id", "name", "description", "type", "location",
	"quantity", "condition", "notes", "created_at", "updated_at",
}

// Repo provides part persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new part repository.
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
	case "name", "type", "location", "quantity", "condition":
		return field
	default:
		return "id"
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a part by primary key.
// Returns domain.ErrNotFound if the part does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Part, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder().Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get part: %w", err)
	}

	p, err := scanPart(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "Part", id)
	}

	return p, nil
}

// List returns one page of parts plus the total count of the whole set.
// With no sort requested the order is id ascending, so page walks are
// reproducible.
func (r *Repo) List(ctx context.Context, pq domain.PageQuery) ([]*domain.Part, int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	order := fmt.Sprintf("%s %s", sortColumn(pq.Sort), pq.Direction)
	sql, args, err := builder().Select(columns...).From(table).
		OrderBy(order).
		Limit(uint64(pq.Size)).
		Offset(uint64(pq.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list parts: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()

	parts, err := scanParts(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list parts: %w", err)
	}

	countSQL, countArgs, err := builder().Select("count(*)").From(table).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count parts: %w", err)
	}

	var total int64
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count parts: %w", err)
	}

	return parts, total, nil
}

// ListByType returns all parts of the given type ordered by name.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) ListByType(ctx context.Context, t domain.PartType) ([]*domain.Part, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder().Select(columns...).From(table).
		Where(squirrel.Eq{"type": t}).
		OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list parts by type: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list parts by type: %w", err)
	}
	defer rows.Close()

	parts, err := scanParts(rows)
	if err != nil {
		return nil, fmt.Errorf("list parts by type: %w", err)
	}

	return parts, nil
}

// Search returns parts whose name or description contains the query as a
// literal, case-insensitive substring. LIKE metacharacters in the query are
// escaped so they never act as wildcards.
func (r *Repo) Search(ctx context.Context, query string) ([]*domain.Part, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	pattern := postgres.ContainsPattern(postgres.EscapeLike(query))
	sql, args, err := builder().Select(columns...).From(table).
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		}).
		OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search parts: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search parts: %w", err)
	}
	defer rows.Close()

	parts, err := scanParts(rows)
	if err != nil {
		return nil, fmt.Errorf("search parts: %w", err)
	}

	return parts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new part. The id and both timestamps are assigned by the
// database, so created_at always equals updated_at on the returned entity.
func (r *Repo) Create(ctx context.Context, p *domain.Part) (*domain.Part, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder().Insert(table).
		Columns("name", "description", "type", "location", "quantity", "condition", "notes").
		Values(p.Name, textOrNull(p.Description), p.Type, p.Location, p.Quantity, p.Condition, textOrNull(p.Notes)).
		Suffix("RETURNING " + allColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create part: %w", err)
	}

	created, err := scanPart(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "Part", uuid.Nil)
	}

	return created, nil
}

// Update applies a partial update and refreshes updated_at.
// Returns domain.ErrNotFound if the part does not exist — including when it
// was deleted concurrently between the caller's fetch and this write.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.PartUpdateParams) (*domain.Part, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := builder().Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + allColumns())

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Description != nil {
		update = update.Set("description", clearableText(*params.Description))
	}
	if params.Type != nil {
		update = update.Set("type", *params.Type)
	}
	if params.Location != nil {
		update = update.Set("location", *params.Location)
	}
	if params.Quantity != nil {
		update = update.Set("quantity", *params.Quantity)
	}
	if params.Condition != nil {
		update = update.Set("condition", *params.Condition)
	}
	if params.Notes != nil {
		update = update.Set("notes", clearableText(*params.Notes))
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update part: %w", err)
	}

	updated, err := scanPart(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "Part", id)
	}

	return updated, nil
}

// Delete removes a part.
// Returns domain.ErrNotFound if the part does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder().Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete part: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "Part", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("Part", id.String())
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

func scanPart(row pgx.Row) (*domain.Part, error) {
	var (
		id                   uuid.UUID
		name                 string
		description          pgtype.Text
		partType             string
		location             string
		quantity             int
		condition            string
		notes                pgtype.Text
		createdAt, updatedAt time.Time
	)

	err := row.Scan(&id, &name, &description, &partType, &location,
		&quantity, &condition, &notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return &domain.Part{
		ID:          id,
		Name:        name,
		Description: textToPtr(description),
		Type:        domain.PartType(partType),
		Location:    location,
		Quantity:    quantity,
		Condition:   domain.PartCondition(condition),
		Notes:       textToPtr(notes),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func scanParts(rows pgx.Rows) ([]*domain.Part, error) {
	var result []*domain.Part
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Part{}
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

func textOrNull(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// clearableText maps the empty string to NULL: on partial updates a present
// empty value means "clear this field".
func clearableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
