package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Pagination bounds. Out-of-range values are a validation failure, never a
// silent clamp, so page walking stays predictable for the client.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// PageQuery holds paging and sorting parameters for list operations.
// Page is 0-based. Sort is an API field name checked against the per-resource
// allow-list; an empty Sort means the stable default ordering (id ascending).
type PageQuery struct {
	Page      int
	Size      int
	Sort      string
	Direction string
}

// Normalize applies defaults: size 20 when unset, direction ASC unless the
// caller asked for DESC (case-insensitive). Unrecognized directions fall back
// to ASC rather than failing.
func (q *PageQuery) Normalize() {
	if q.Size == 0 {
		q.Size = DefaultPageSize
	}
	if strings.EqualFold(q.Direction, SortDesc) {
		q.Direction = SortDesc
	} else {
		q.Direction = SortAsc
	}
}

// Validate checks bounds and the sort allow-list, collecting all violations.
func (q PageQuery) Validate(sortable []string) error {
	var errs []FieldError

	if q.Page < 0 {
		errs = append(errs, FieldError{Field: "page", Message: "Page number must be 0 or greater"})
	}
	if q.Size < 1 || q.Size > MaxPageSize {
		errs = append(errs, FieldError{Field: "size", Message: fmt.Sprintf("Page size must be between 1 and %d", MaxPageSize)})
	}
	if q.Sort != "" && !slices.Contains(sortable, q.Sort) {
		errs = append(errs, FieldError{Field: "sort", Message: "Invalid sort field: " + q.Sort})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Offset returns the row offset for the query.
func (q PageQuery) Offset() int {
	return q.Page * q.Size
}

// Page is one page of results plus the derived metadata.
// First and Last are computed from PageNumber and TotalPages and can never
// disagree with them.
type Page[T any] struct {
	Content       []T
	PageNumber    int
	PageSize      int
	TotalElements int64
	TotalPages    int
	First         bool
	Last          bool
}

// NewPage builds the envelope for one page of content. total is the size of
// the whole result set before paging (but after any predicate filtering).
func NewPage[T any](content []T, pageNumber, pageSize int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return Page[T]{
		Content:       content,
		PageNumber:    pageNumber,
		PageSize:      pageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         pageNumber == 0,
		Last:          pageNumber >= totalPages-1,
	}
}
