package middleware

import (
	"net/http"

	"github.com/stayvista/stayvista-api/internal/domain"
	"github.com/stayvista/stayvista-api/internal/http/response"
	"github.com/stayvista/stayvista-api/internal/store"
)

// RequireRole gates a route on the caller's stored role. It must run
// after RequireAuth. The lookup is the only store access; a missing user
// record denies exactly like a mismatch. The denial status is 401, which
// this API reuses for role failures.
func RequireRole(users store.UsersRepo, role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := Claims(r)
			if claims == nil {
				response.Unauthorized(w, "unauthorized access")
				return
			}
			user, err := users.GetByEmail(r.Context(), claims.Email)
			if err != nil {
				response.InternalError(w, "error resolving role")
				return
			}
			if user == nil || user.Role != role {
				response.Unauthorized(w, "unauthorized access")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
