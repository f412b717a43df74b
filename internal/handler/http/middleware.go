package handler

import (
	"context"
	"net/http"

	"github.com/vlasenka/pausebot/internal/models"
)

type contextKey string

const (
	authPayloadKey contextKey = "auth_payload"
)

// TokenService verifies admin session tokens
type TokenService interface {
	VerifyToken(tokenString string) (*models.TokenPayload, error)
}

// AuthMiddleware gets the token from the cookie and passes its payload to
// the context
func AuthMiddleware(ts TokenService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("auth_token")
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			payload, err := ts.VerifyToken(cookie.Value)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), authPayloadKey, payload)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// APIKeyMiddleware guards the bot frontend surface with a shared key
func APIKeyMiddleware(key string) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" || r.Header.Get("X-Api-Key") != key {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getAuthPayload extracts authorization token payload from context
func getAuthPayload(ctx context.Context) (*models.TokenPayload, bool) {
	payload, ok := ctx.Value(authPayloadKey).(*models.TokenPayload)
	return payload, ok
}
