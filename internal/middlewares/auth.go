package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/snake-game-api/internal/logger"
)

// Tokener defines the token operations the middleware needs
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUsername(ctx context.Context, tokenString string) (string, error)
}

// usernameKey is an unexported type for the authenticated-subject context key
type usernameKey struct{}

// AuthMiddleware returns a middleware that validates the bearer token and
// stores its subject in the request context for downstream handlers.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			username, err := tokener.GetUsername(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUsernameToContext(ctx, username)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": "Invalid token"})
}

// SetUsernameToContext stores the authenticated username in the context
func SetUsernameToContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey{}, username)
}

// GetUsernameFromContext retrieves the authenticated username. ok is false
// when the request did not pass AuthMiddleware.
func GetUsernameFromContext(ctx context.Context) (username string, ok bool) {
	username, ok = ctx.Value(usernameKey{}).(string)
	return username, ok
}
