package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pawsome-backend/internal/model"
	"pawsome-backend/pkg/apierror"
)

type catalogService interface {
	List(ctx context.Context) ([]model.Service, error)
	Create(ctx context.Context, req model.CreateServiceRequest) (model.Service, error)
	Update(ctx context.Context, id int64, req model.UpdateServiceRequest) (model.Service, error)
	Delete(ctx context.Context, id int64) (model.Service, error)
	Reorder(ctx context.Context, orderedIDs []int64) error
}

type CatalogHandler struct {
	service catalogService
}

func NewCatalogHandler(service catalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"services": services})
}

func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", http.StatusBadRequest))
		return
	}

	created, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "service created successfully",
		"service": created,
	})
}

func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, err := parseServiceID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", http.StatusBadRequest))
		return
	}

	updated, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "service updated successfully",
		"service": updated,
	})
}

func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseServiceID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "service deleted successfully",
		"service": deleted,
	})
}

// Reorder accepts `{"orderedIds": [...]}`. Decoding into []int64 rejects
// both a non-array value and any non-integer element before storage is
// touched; an empty array is a successful no-op, not a validation error.
func (h *CatalogHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST",
			"orderedIds must be an array of integer service ids", http.StatusBadRequest))
		return
	}

	if err := h.service.Reorder(r.Context(), payload.OrderedIDs); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "services reordered successfully",
		"count":   len(payload.OrderedIDs),
	})
}

func parseServiceID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apierror.New("BAD_REQUEST", "invalid service ID format", http.StatusBadRequest)
	}
	return id, nil
}
