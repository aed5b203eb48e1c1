package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Hayzedd-A/appointment-booking/internal/api/handlers"
	"github.com/Hayzedd-A/appointment-booking/internal/auth"
)

const msgUnauthorized = "authentication required"

type contextKey string

// RoleContextKey ключ контекста с ролью аутентифицированного пользователя
const RoleContextKey contextKey = "role"

// Auth проверяет JWT токен админа: сначала в cookie "token",
// затем в заголовке Authorization: Bearer
func Auth(manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			claims, err := manager.Parse(token)
			if err != nil || claims.Role != auth.RoleAdmin {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), RoleContextKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}
