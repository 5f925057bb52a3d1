package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"pawsome-backend/internal/model"
	"pawsome-backend/pkg/apierror"
)

type authService interface {
	VerifyCredentials(username string, password string) bool
	IssueToken(username string) (string, error)
}

type AuthHandler struct {
	service authService
}

func NewAuthHandler(service authService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login exchanges admin credentials for a signed token. The 401 message
// never reveals whether the username or the password was wrong, and a
// missing server secret surfaces as a 500, not a credential failure.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", http.StatusBadRequest))
		return
	}

	if strings.TrimSpace(payload.Username) == "" || payload.Password == "" {
		writeError(w, apierror.New("BAD_REQUEST", "username and password are required", http.StatusBadRequest))
		return
	}

	if !h.service.VerifyCredentials(payload.Username, payload.Password) {
		writeError(w, model.ErrInvalidCredentials)
		return
	}

	token, err := h.service.IssueToken(payload.Username)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{
		Token: token,
		User:  model.AuthUser{Username: payload.Username, Role: "admin"},
	})
}
