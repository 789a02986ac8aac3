package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/evently-hq/evently/internal/auth"
	"github.com/evently-hq/evently/internal/utils"
)

type contextKey string

const UserIDKey contextKey = "userID"

// AuthMiddleware rejects any request without a verifiable bearer token
// and otherwise attaches the caller's user id to the request context.
// The token travels in the Authorization header, with or without the
// "Bearer " prefix. Every rejection looks the same to the client.
func AuthMiddleware(tokens *auth.TokenService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		if header == "" {
			utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")

		userID, err := tokens.Verify(tokenStr)
		if err != nil {
			utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID pulls the authenticated user id out of the request context.
func UserID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(UserIDKey).(string)
	return id, ok && id != ""
}
