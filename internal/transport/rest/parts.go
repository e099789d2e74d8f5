package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/languidpie/smit-homework-v2/internal/domain"
	"github.com/languidpie/smit-homework-v2/internal/service/part"
)

// partService defines the minimal interface needed by PartsHandler.
type partService interface {
	Create(ctx context.Context, in part.Input) (*domain.Part, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Part, error)
	List(ctx context.Context, pq domain.PageQuery) (domain.Page[*domain.Part], error)
	FilterByType(ctx context.Context, rawType string) ([]*domain.Part, error)
	Search(ctx context.Context, query string) ([]*domain.Part, error)
	Update(ctx context.Context, id uuid.UUID, in part.Input) (*domain.Part, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PartsHandler serves the bicycle parts endpoints.
type PartsHandler struct {
	svc partService
	log *slog.Logger
}

// NewPartsHandler creates a PartsHandler.
func NewPartsHandler(svc partService, logger *slog.Logger) *PartsHandler {
	return &PartsHandler{svc: svc, log: logger.With("handler", "parts")}
}

type partRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Location    *string `json:"location"`
	Quantity    *int    `json:"quantity"`
	Condition   *string `json:"condition"`
	Notes       *string `json:"notes"`
}

func (req partRequest) toInput() part.Input {
	return part.Input{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Location:    req.Location,
		Quantity:    req.Quantity,
		Condition:   req.Condition,
		Notes:       req.Notes,
	}
}

type partResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Type        string  `json:"type"`
	Location    string  `json:"location"`
	Quantity    int     `json:"quantity"`
	Condition   string  `json:"condition"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func toPartResponse(p *domain.Part) partResponse {
	return partResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Type:        p.Type.String(),
		Location:    p.Location,
		Quantity:    p.Quantity,
		Condition:   p.Condition.String(),
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

func toPartResponses(parts []*domain.Part) []partResponse {
	out := make([]partResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, toPartResponse(p))
	}
	return out
}

// Create handles POST /api/parts.
func (h *PartsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req partRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), req.toInput())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/parts/%s", created.ID))
	writeJSON(w, http.StatusCreated, toPartResponse(created))
}

// Get handles GET /api/parts/{id}.
func (h *PartsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPartResponse(p))
}

// List handles GET /api/parts with page, size, sort and direction params.
func (h *PartsHandler) List(w http.ResponseWriter, r *http.Request) {
	pq, err := parsePageQuery(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), pq)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(page, toPartResponse))
}

// FilterByType handles GET /api/parts/type/{type}.
func (h *PartsHandler) FilterByType(w http.ResponseWriter, r *http.Request) {
	parts, err := h.svc.FilterByType(r.Context(), chi.URLParam(r, "type"))
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPartResponses(parts))
}

// Search handles GET /api/parts/search?q=.
func (h *PartsHandler) Search(w http.ResponseWriter, r *http.Request) {
	parts, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPartResponses(parts))
}

// Update handles PUT /api/parts/{id}.
func (h *PartsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req partRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.toInput())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPartResponse(updated))
}

// Delete handles DELETE /api/parts/{id}.
func (h *PartsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseID reads the {id} path parameter; a malformed value is a 400, never a
// lookup.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id format")
		return uuid.Nil, false
	}
	return id, true
}

// parsePageQuery reads the pagination params. Non-numeric page or size is a
// field-level validation failure.
func parsePageQuery(r *http.Request) (domain.PageQuery, error) {
	q := r.URL.Query()
	pq := domain.PageQuery{
		Sort:      q.Get("sort"),
		Direction: q.Get("direction"),
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return pq, domain.NewValidationError("page", "Page number must be a number")
		}
		pq.Page = page
	}
	if raw := q.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return pq, domain.NewValidationError("size", "Page size must be a number")
		}
		pq.Size = size
	}

	return pq, nil
}
