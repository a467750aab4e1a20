package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"souvenaria-backend/internal/security"

	"github.com/gorilla/mux"
)

type contextKey string

const claimsContextKey contextKey = "user_claims"

// AuthMiddleware validates the bearer token and stashes the claims in the
// request context for the handlers downstream.
func AuthMiddleware(tokens security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil || claims.Type != security.TokenTypeAccess {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid or expired token"})
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user id set by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (string, error) {
	claims, ok := ctx.Value(claimsContextKey).(*security.UserClaims)
	if !ok || claims.UserID == "" {
		return "", fmt.Errorf("no authenticated user in context")
	}
	return claims.UserID, nil
}
