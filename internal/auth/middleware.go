package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Edriczzzz/task-api/pkg/respond"
)

type contextKey struct{}

var claimsKey = contextKey{}

// ClaimsFromContext возвращает claims, положенные middleware.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// RequireAuth пропускает дальше только запросы с валидным Bearer токеном.
func RequireAuth(jwt *JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				respond.Error(w, r, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}

			claims, err := jwt.Verify(token)
			if err != nil {
				respond.Error(w, r, http.StatusUnauthorized, "unauthorized", err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
