package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"pawsome-backend/internal/model"
	"pawsome-backend/pkg/apierror"
)

type contactService interface {
	Submit(ctx context.Context, req model.ContactRequest) (model.ContactSubmission, error)
	ListRecent(ctx context.Context, limit int) ([]model.ContactSubmission, error)
}

type ContactHandler struct {
	service contactService
}

func NewContactHandler(service contactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", http.StatusBadRequest))
		return
	}

	sub, err := h.service.Submit(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "thanks for reaching out, we will get back to you soon",
		"id":      sub.ID,
	})
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	subs, err := h.service.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"submissions": subs})
}
