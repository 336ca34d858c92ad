package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/terry1921/stickerstore/pkg/auth"
	"github.com/terry1921/stickerstore/pkg/response"
)

type claimsKey struct{}

// Auth validates the Bearer token and stores the session claims in the
// request context. Requests without a valid token get a 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromCtx returns the session claims stored by Auth.
func UserFromCtx(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok
}

// RoleFromCtx returns the current user's role, if a session is present.
func RoleFromCtx(ctx context.Context) (string, bool) {
	claims, ok := UserFromCtx(ctx)
	if !ok {
		return "", false
	}
	return claims.Role, true
}
