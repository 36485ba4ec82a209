package handlers

import (
	"net/http"

	"github.com/stayvista/stayvista-api/internal/http/middleware"
	"github.com/stayvista/stayvista-api/internal/http/response"
	"github.com/stayvista/stayvista-api/internal/reporting"
	"github.com/stayvista/stayvista-api/internal/store"
	"github.com/stayvista/stayvista-api/pkg/logger"
)

// StatsHandler aggregates dashboard figures for each role. The caller's
// identity comes from the verified token claims, never from the request
// body, so a host can only ever see their own numbers.
type StatsHandler struct {
	Users    store.UsersRepo
	Rooms    store.RoomsRepo
	Bookings store.BookingsRepo
}

func NewStatsHandler(users store.UsersRepo, rooms store.RoomsRepo, bookings store.BookingsRepo) *StatsHandler {
	return &StatsHandler{Users: users, Rooms: rooms, Bookings: bookings}
}

func (h *StatsHandler) Admin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sales, err := h.Bookings.SalesAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "admin sales query failed", "error", err)
		response.InternalError(w, "error fetching statistics")
		return
	}
	totalRooms, err := h.Rooms.Count(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "room count failed", "error", err)
		response.InternalError(w, "error fetching statistics")
		return
	}
	totalUsers, err := h.Users.Count(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "user count failed", "error", err)
		response.InternalError(w, "error fetching statistics")
		return
	}

	response.JSON(w, http.StatusOK, reporting.AdminStats{
		TotalRoom: totalRooms,
		TotalUser: totalUsers,
		Summary:   reporting.Summarize(sales),
	})
}

func (h *StatsHandler) Host(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims := middleware.Claims(r)
	if claims == nil {
		response.Unauthorized(w, "unauthorized access")
		return
	}

	sales, err := h.Bookings.SalesByHost(ctx, claims.Email)
	if err != nil {
		logger.ErrorContext(ctx, "host sales query failed", "error", err, "email", claims.Email)
		response.InternalError(w, "error fetching statistics")
		return
	}
	totalRooms, err := h.Rooms.CountByHost(ctx, claims.Email)
	if err != nil {
		logger.ErrorContext(ctx, "host room count failed", "error", err, "email", claims.Email)
		response.InternalError(w, "error fetching statistics")
		return
	}

	response.JSON(w, http.StatusOK, reporting.HostStats{
		TotalRoom: totalRooms,
		Summary:   reporting.Summarize(sales),
	})
}

func (h *StatsHandler) Guest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims := middleware.Claims(r)
	if claims == nil {
		response.Unauthorized(w, "unauthorized access")
		return
	}

	sales, err := h.Bookings.SalesByGuest(ctx, claims.Email)
	if err != nil {
		logger.ErrorContext(ctx, "guest sales query failed", "error", err, "email", claims.Email)
		response.InternalError(w, "error fetching statistics")
		return
	}

	response.JSON(w, http.StatusOK, reporting.GuestStats{
		Summary: reporting.Summarize(sales),
	})
}
