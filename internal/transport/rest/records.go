package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/languidpie/smit-homework-v2/internal/domain"
	"github.com/languidpie/smit-homework-v2/internal/service/record"
)

// recordService defines the minimal interface needed by RecordsHandler.
type recordService interface {
	Create(ctx context.Context, in record.Input) (*domain.VinylRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.VinylRecord, error)
	List(ctx context.Context, pq domain.PageQuery) (domain.Page[*domain.VinylRecord], error)
	FilterByGenre(ctx context.Context, rawGenre string) ([]*domain.VinylRecord, error)
	Search(ctx context.Context, query string) ([]*domain.VinylRecord, error)
	Update(ctx context.Context, id uuid.UUID, in record.Input) (*domain.VinylRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecordsHandler serves the vinyl record endpoints.
type RecordsHandler struct {
	svc recordService
	log *slog.Logger
}

// NewRecordsHandler creates a RecordsHandler.
func NewRecordsHandler(svc recordService, logger *slog.Logger) *RecordsHandler {
	return &RecordsHandler{svc: svc, log: logger.With("handler", "records")}
}

type recordRequest struct {
	Title          *string `json:"title"`
	Artist         *string `json:"artist"`
	ReleaseYear    *int    `json:"releaseYear"`
	Genre          *string `json:"genre"`
	PurchaseSource *string `json:"purchaseSource"`
	PurchaseDate   *string `json:"purchaseDate"`
	Condition      *string `json:"condition"`
	Notes          *string `json:"notes"`
}

func (req recordRequest) toInput() record.Input {
	return record.Input{
		Title:          req.Title,
		Artist:         req.Artist,
		ReleaseYear:    req.ReleaseYear,
		Genre:          req.Genre,
		PurchaseSource: req.PurchaseSource,
		PurchaseDate:   req.PurchaseDate,
		Condition:      req.Condition,
		Notes:          req.Notes,
	}
}

type recordResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Artist         string  `json:"artist"`
	ReleaseYear    int     `json:"releaseYear"`
	Genre          string  `json:"genre"`
	PurchaseSource *string `json:"purchaseSource,omitempty"`
	PurchaseDate   *string `json:"purchaseDate,omitempty"`
	Condition      string  `json:"condition"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

func toRecordResponse(rec *domain.VinylRecord) recordResponse {
	resp := recordResponse{
		ID:             rec.ID.String(),
		Title:          rec.Title,
		Artist:         rec.Artist,
		ReleaseYear:    rec.ReleaseYear,
		Genre:          rec.Genre.String(),
		PurchaseSource: rec.PurchaseSource,
		Condition:      rec.Condition.String(),
		Notes:          rec.Notes,
		CreatedAt:      rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      rec.UpdatedAt.Format(time.RFC3339),
	}
	if rec.PurchaseDate != nil {
		date := rec.PurchaseDate.Format("2006-01-02")
		resp.PurchaseDate = &date
	}
	return resp
}

func toRecordResponses(records []*domain.VinylRecord) []recordResponse {
	out := make([]recordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toRecordResponse(rec))
	}
	return out
}

// Create handles POST /api/records.
func (h *RecordsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), req.toInput())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/records/%s", created.ID))
	writeJSON(w, http.StatusCreated, toRecordResponse(created))
}

// Get handles GET /api/records/{id}.
func (h *RecordsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// List handles GET /api/records with page, size, sort and direction params.
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, toPageResponse(page, toRecordResponse))
}

// FilterByGenre handles GET /api/records/genre/{genre}.
func (h *RecordsHandler) FilterByGenre(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.FilterByGenre(r.Context(), chi.URLParam(r, "genre"))
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponses(records))
}

// Search handles GET /api/records/search?q=.
func (h *RecordsHandler) Search(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponses(records))
}

// Update handles PUT /api/records/{id}.
func (h *RecordsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.toInput())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(updated))
}

// Delete handles DELETE /api/records/{id}.
func (h *RecordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
