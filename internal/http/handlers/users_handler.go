package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stayvista/stayvista-api/internal/domain"
	"github.com/stayvista/stayvista-api/internal/http/response"
	"github.com/stayvista/stayvista-api/internal/store"
	"github.com/stayvista/stayvista-api/internal/utils"
	"github.com/stayvista/stayvista-api/pkg/logger"
)

type UsersHandler struct {
	Users store.UsersRepo
}

func NewUsersHandler(users store.UsersRepo) *UsersHandler {
	return &UsersHandler{Users: users}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.GetAll(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "listing users failed", "error", err)
		response.InternalError(w, "error fetching users")
		return
	}
	response.JSON(w, http.StatusOK, users)
}

// Upsert stores a user profile on first sign-in. A repeat call for a
// known email is answered with a marker message instead of a write.
func (h *UsersHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}
	user.Email = utils.NormalizeEmail(user.Email)
	if !utils.IsValidEmail(user.Email) {
		response.BadRequest(w, "invalid email")
		return
	}

	existing, err := h.Users.GetByEmail(r.Context(), user.Email)
	if err != nil {
		logger.ErrorContext(r.Context(), "user lookup failed", "error", err, "email", user.Email)
		response.InternalError(w, "error saving user")
		return
	}
	if existing != nil {
		response.JSON(w, http.StatusOK, map[string]string{"message": "User Already Exist"})
		return
	}

	if user.Timestamp == nil {
		now := time.Now()
		user.Timestamp = &now
	}
	res, err := h.Users.Create(r.Context(), &user)
	if err != nil {
		logger.ErrorContext(r.Context(), "user insert failed", "error", err, "email", user.Email)
		response.InternalError(w, "error saving user")
		return
	}
	response.JSON(w, http.StatusOK, res)
}

// UpdateRole sets the role for the addressed user and refreshes their
// timestamp. The body's time field accepts either epoch milliseconds or
// RFC 3339; an absent value falls back to now.
func (h *UsersHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	email := utils.NormalizeEmail(chi.URLParam(r, "email"))

	var in struct {
		Role domain.Role `json:"role"`
		Time any         `json:"time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}
	ts := parseTimestamp(in.Time)

	res, err := h.Users.UpdateRole(r.Context(), email, in.Role, ts)
	if err != nil {
		logger.ErrorContext(r.Context(), "role update failed", "error", err, "email", email)
		response.InternalError(w, "error updating role")
		return
	}
	response.JSON(w, http.StatusOK, res)
}

// RequestRole flags a guest as having asked to become a host.
func (h *UsersHandler) RequestRole(w http.ResponseWriter, r *http.Request) {
	email := utils.NormalizeEmail(chi.URLParam(r, "email"))

	res, err := h.Users.MarkRoleRequested(r.Context(), email)
	if err != nil {
		logger.ErrorContext(r.Context(), "role request failed", "error", err, "email", email)
		response.InternalError(w, "error requesting role")
		return
	}
	response.JSON(w, http.StatusOK, res)
}

// GetRole answers with the bare role string, or null for unknown users.
func (h *UsersHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	email := utils.NormalizeEmail(chi.URLParam(r, "email"))

	user, err := h.Users.GetByEmail(r.Context(), email)
	if err != nil {
		logger.ErrorContext(r.Context(), "role lookup failed", "error", err, "email", email)
		response.InternalError(w, "error fetching role")
		return
	}
	if user == nil {
		response.JSON(w, http.StatusOK, nil)
		return
	}
	response.JSON(w, http.StatusOK, user.Role)
}

func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case float64:
		return time.UnixMilli(int64(t))
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Now()
}
