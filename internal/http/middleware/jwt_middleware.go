package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/stayvista/stayvista-api/internal/http/response"
	"github.com/stayvista/stayvista-api/internal/platform/auth"
	"github.com/stayvista/stayvista-api/pkg/logger"
)

type ctxKey string

const CtxClaims ctxKey = "claims"

// CookieName is the default transport the credential rides in.
const CookieName = "token"

// RequireAuth verifies the signed cookie and stores the decoded claims in
// the request context. No cookie, bad signature, or expiry short-circuits
// with 401 before the handler runs. The cookie name and secret must match
// what the issuing handler was configured with.
func RequireAuth(cookieName, secret string) func(http.Handler) http.Handler {
	if cookieName == "" {
		cookieName = CookieName
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if errors.Is(err, http.ErrNoCookie) {
				response.Unauthorized(w, "unauthorized access")
				return
			}
			claims, err := auth.Parse(cookie.Value, secret)
			if err != nil {
				response.Unauthorized(w, "unauthorized access")
				return
			}
			ctx := context.WithValue(r.Context(), CtxClaims, claims)
			ctx = context.WithValue(ctx, logger.UserEmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Claims returns the verified identity, or nil outside RequireAuth.
func Claims(r *http.Request) *auth.Claims {
	v := r.Context().Value(CtxClaims)
	if v == nil {
		return nil
	}
	return v.(*auth.Claims)
}
