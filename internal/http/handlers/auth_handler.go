package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/stayvista/stayvista-api/internal/http/response"
	"github.com/stayvista/stayvista-api/internal/platform/auth"
	"github.com/stayvista/stayvista-api/internal/utils"
	"github.com/stayvista/stayvista-api/pkg/logger"
)

// AuthHandler issues and clears the signed credential cookie. The caller
// is already authenticated by the frontend's identity provider; this
// endpoint only binds that identity to a server-signed token.
type AuthHandler struct {
	CookieName string
	Secret     string
	TokenTTL   time.Duration
	Production bool
}

func NewAuthHandler(cookieName, secret string, ttl time.Duration, production bool) *AuthHandler {
	return &AuthHandler{CookieName: cookieName, Secret: secret, TokenTTL: ttl, Production: production}
}

func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}
	email := utils.NormalizeEmail(in.Email)
	if !utils.IsValidEmail(email) {
		response.BadRequest(w, "invalid email")
		return
	}

	token, err := auth.NewAccessToken(email, in.Name, h.Secret, h.TokenTTL)
	if err != nil {
		logger.ErrorContext(r.Context(), "token signing failed", "error", err)
		response.InternalError(w, "error issuing token")
		return
	}

	http.SetCookie(w, h.cookie(token, int(h.TokenTTL.Seconds())))
	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.cookie("", -1))
	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// cookie builds the credential cookie. Cross-site frontends need
// SameSite=None, which browsers only accept together with Secure, so
// production gets None+Secure and development Strict.
func (h *AuthHandler) cookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if h.Production {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     h.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.Production,
		SameSite: sameSite,
	}
}
