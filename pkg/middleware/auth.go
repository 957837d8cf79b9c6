package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/team6/sales-report-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyEmployee contextKey = "employee"
)

// AuthMiddleware validates the bearer token on every route except login and
// healthcheck and stores the claims in the request context.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/login" || r.URL.Path == "/healthcheck" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyEmployee, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
