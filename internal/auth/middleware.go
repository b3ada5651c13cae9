package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/bamdoliro/marugo/internal/rbac"
)

// JWTMiddleware validates the bearer token and places the subject uuid
// and role into the request context. Refresh tokens are rejected here;
// they are only good at the refresh endpoint.
func JWTMiddleware(a *AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "missing bearer", http.StatusUnauthorized)
				return
			}
			claims, err := a.Parse(strings.TrimPrefix(h, "Bearer "))
			if err != nil || claims.Kind != "access" {
				http.Error(w, "bad token", http.StatusUnauthorized)
				return
			}
			sub, err := uuid.Parse(claims.Subject)
			if err != nil {
				http.Error(w, "bad token", http.StatusUnauthorized)
				return
			}
			ctx := WithSubject(r.Context(), sub)
			ctx = rbac.WithRole(ctx, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
