package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pawsome-backend/internal/model"
)

type tokenValidator interface {
	ValidateToken(tokenString string) (*model.TokenClaims, error)
}

type contextKey string

const authClaimsContextKey contextKey = "auth_claims"

type TokenGuard struct {
	validator tokenValidator
}

func NewTokenGuard(validator tokenValidator) *TokenGuard {
	return &TokenGuard{validator: validator}
}

// RequireAdmin gates mutating routes behind a valid admin token.
//
// The header is read as "<scheme> <token>": only the second
// whitespace-delimited segment is treated as the token, and the scheme
// word itself is not compared to any literal. Missing header and missing
// token segment are 401s, a bad or expired token is a 403, and an unset
// signing secret is a 500 so misconfiguration never looks like a client
// mistake.
func (g *TokenGuard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" {
			writeGuardError(w, http.StatusUnauthorized, "authorization header with bearer token is required")
			return
		}

		parts := strings.Fields(header)
		if len(parts) < 2 {
			writeGuardError(w, http.StatusUnauthorized, "access token is missing or malformed")
			return
		}

		claims, err := g.validator.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, model.ErrAuthNotConfigured) {
				writeGuardError(w, http.StatusInternalServerError, "authentication configuration error")
				return
			}
			writeGuardError(w, http.StatusForbidden, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), authClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func ClaimsFromContext(ctx context.Context) (*model.TokenClaims, bool) {
	claims, ok := ctx.Value(authClaimsContextKey).(*model.TokenClaims)
	return claims, ok
}

func writeGuardError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
