package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"pawsome-backend/internal/model"
	"pawsome-backend/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps an error to a status and a client-safe
// `{"error": "..."}` body. Anything unclassified is a 500 with a generic
// message; the detail only goes to the server log.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "unexpected server error"

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		message = apiErr.Message
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = "invalid username or password"
	case errors.Is(err, model.ErrAuthNotConfigured):
		status = http.StatusInternalServerError
		message = "authentication configuration error"
	case errors.Is(err, model.ErrInvalidToken):
		status = http.StatusForbidden
		message = "invalid or expired token"
	case errors.Is(err, model.ErrServiceNotFound):
		status = http.StatusNotFound
		message = "service not found"
	case errors.Is(err, model.ErrInvalidInput):
		status = http.StatusBadRequest
		message = "invalid input"
	default:
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, map[string]string{"error": message})
}
