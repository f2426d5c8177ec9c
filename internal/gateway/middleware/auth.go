package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Nexora712/linkbio-backend/internal/shared/utils"
)

type contextKey string

const (
	ContextKeyUserId contextKey = "user_id"
	ContextKeyEmail  contextKey = "email"
)

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret}
}

// RequireAuth enforces a valid Bearer token on the request. The token may also
// arrive as a "token" query parameter, which is how the websocket client
// authenticates since browsers cannot set headers on the upgrade request.
// On success the user's ID and email are injected into the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := ""
		authHeader := r.Header.Get("Authorization")

		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenStr = parts[1]
			}
		}

		if tokenStr == "" {
			tokenStr = r.URL.Query().Get("token")
		}

		if tokenStr == "" {
			http.Error(w, `{"error": "missing or invalid authorization"}`, http.StatusUnauthorized)
			return
		}

		claims, err := utils.ValidateToken(tokenStr, m.jwtSecret)
		if err != nil {
			http.Error(w, `{"error": "invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyUserId, claims.UserID)
		ctx = context.WithValue(ctx, ContextKeyEmail, claims.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
