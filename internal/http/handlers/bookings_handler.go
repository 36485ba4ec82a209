package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stayvista/stayvista-api/internal/domain"
	"github.com/stayvista/stayvista-api/internal/http/response"
	"github.com/stayvista/stayvista-api/internal/platform/mailer"
	"github.com/stayvista/stayvista-api/internal/store"
	"github.com/stayvista/stayvista-api/internal/utils"
	"github.com/stayvista/stayvista-api/pkg/events"
	"github.com/stayvista/stayvista-api/pkg/logger"
)

// notifyTimeout caps the post-write event publish so a slow broker
// cannot hold the response hostage. Mail sends are bounded inside the
// mailer implementations, not here.
const notifyTimeout = 5 * time.Second

type BookingsHandler struct {
	Bookings store.BookingsRepo
	Events   events.Publisher
	Mail     mailer.Service
}

func NewBookingsHandler(bookings store.BookingsRepo, publisher events.Publisher, mail mailer.Service) *BookingsHandler {
	return &BookingsHandler{Bookings: bookings, Events: publisher, Mail: mail}
}

// Create records a reservation. The event publish and the confirmation
// email are best effort; a failure there is logged, not surfaced.
func (h *BookingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in struct {
		BookingInfo domain.Booking `json:"bookingInfo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}
	booking := in.BookingInfo
	booking.Guest.Email = utils.NormalizeEmail(booking.Guest.Email)
	booking.Host.Email = utils.NormalizeEmail(booking.Host.Email)
	if booking.Time.IsZero() {
		booking.Time = time.Now()
	}

	res, err := h.Bookings.Create(r.Context(), &booking)
	if err != nil {
		logger.ErrorContext(r.Context(), "booking insert failed", "error", err)
		response.InternalError(w, "error saving booking")
		return
	}

	h.notifyCreated(r.Context(), res.InsertedID, &booking)
	response.JSON(w, http.StatusCreated, res)
}

func (h *BookingsHandler) ListByGuest(w http.ResponseWriter, r *http.Request) {
	email := utils.NormalizeEmail(chi.URLParam(r, "email"))

	bookings, err := h.Bookings.ListByGuest(r.Context(), email)
	if err != nil {
		logger.ErrorContext(r.Context(), "listing guest bookings failed", "error", err, "email", email)
		response.InternalError(w, "error fetching bookings")
		return
	}
	response.JSON(w, http.StatusOK, bookings)
}

func (h *BookingsHandler) ListByHost(w http.ResponseWriter, r *http.Request) {
	email := utils.NormalizeEmail(chi.URLParam(r, "email"))

	bookings, err := h.Bookings.ListByHost(r.Context(), email)
	if err != nil {
		logger.ErrorContext(r.Context(), "listing host bookings failed", "error", err, "email", email)
		response.InternalError(w, "error fetching bookings")
		return
	}
	response.JSON(w, http.StatusOK, bookings)
}

func (h *BookingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid booking id")
		return
	}

	res, err := h.Bookings.Delete(r.Context(), id)
	if err != nil {
		logger.ErrorContext(r.Context(), "booking delete failed", "error", err, "booking_id", id.Hex())
		response.InternalError(w, "error deleting booking")
		return
	}

	h.publish(r.Context(), events.BookingCanceled, events.BookingCanceledEvent{
		BookingID:  id.Hex(),
		CanceledAt: time.Now(),
	})
	response.JSON(w, http.StatusOK, res)
}

func (h *BookingsHandler) notifyCreated(ctx context.Context, bookingID string, booking *domain.Booking) {
	h.publish(ctx, events.BookingCreated, events.BookingCreatedEvent{
		BookingID:  bookingID,
		RoomID:     booking.RoomID.Hex(),
		GuestEmail: booking.Guest.Email,
		HostEmail:  booking.Host.Email,
		TotalPrice: booking.TotalPrice,
		Time:       booking.Time,
	})

	if h.Mail == nil || booking.Guest.Email == "" {
		return
	}
	if err := h.Mail.SendBookingConfirmation(booking.Guest.Email, booking.Guest.Name, booking.Title, booking.TotalPrice, booking.Time); err != nil {
		logger.ErrorContext(ctx, "booking confirmation email failed", "error", err, "email", booking.Guest.Email)
	}
}

func (h *BookingsHandler) publish(ctx context.Context, subject string, payload any) {
	if h.Events == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()
	if err := h.Events.Publish(pubCtx, subject, payload); err != nil {
		logger.ErrorContext(ctx, "event publish failed", "error", err, "subject", subject)
	}
}
