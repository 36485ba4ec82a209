package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stayvista/stayvista-api/internal/domain"
	"github.com/stayvista/stayvista-api/internal/http/response"
	"github.com/stayvista/stayvista-api/internal/store"
	"github.com/stayvista/stayvista-api/internal/utils"
	"github.com/stayvista/stayvista-api/pkg/logger"
)

// featuredCount is how many rooms the landing page carousel shows.
const featuredCount = 5

type RoomsHandler struct {
	Rooms store.RoomsRepo
}

func NewRoomsHandler(rooms store.RoomsRepo) *RoomsHandler {
	return &RoomsHandler{Rooms: rooms}
}

// List serves one page of the catalogue, optionally narrowed to a
// category. Pages are numbered from 1 via the start query parameter.
func (h *RoomsHandler) List(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "invalid start parameter")
			return
		}
		page = parsed
	}
	category := r.URL.Query().Get("category")

	pageResult, err := h.Rooms.List(r.Context(), category, page)
	if err != nil {
		logger.ErrorContext(r.Context(), "listing rooms failed", "error", err)
		response.InternalError(w, "error fetching rooms")
		return
	}
	response.JSON(w, http.StatusOK, pageResult)
}

func (h *RoomsHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Rooms.ListFirst(r.Context(), featuredCount)
	if err != nil {
		logger.ErrorContext(r.Context(), "listing featured rooms failed", "error", err)
		response.InternalError(w, "error fetching rooms")
		return
	}
	response.JSON(w, http.StatusOK, rooms)
}

func (h *RoomsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid room id")
		return
	}

	room, err := h.Rooms.Get(r.Context(), id)
	if err != nil {
		logger.ErrorContext(r.Context(), "room lookup failed", "error", err, "room_id", id.Hex())
		response.InternalError(w, "error fetching room")
		return
	}
	response.JSON(w, http.StatusOK, room)
}

func (h *RoomsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var room domain.Room
	if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}
	room.Host.Email = utils.NormalizeEmail(room.Host.Email)

	res, err := h.Rooms.Create(r.Context(), &room)
	if err != nil {
		logger.ErrorContext(r.Context(), "room insert failed", "error", err)
		response.InternalError(w, "error saving room")
		return
	}
	response.JSON(w, http.StatusCreated, res)
}

func (h *RoomsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid room id")
		return
	}

	res, err := h.Rooms.Delete(r.Context(), id)
	if err != nil {
		logger.ErrorContext(r.Context(), "room delete failed", "error", err, "room_id", id.Hex())
		response.InternalError(w, "error deleting room")
		return
	}
	response.JSON(w, http.StatusOK, res)
}

func (h *RoomsHandler) ListByHost(w http.ResponseWriter, r *http.Request) {
	email := utils.NormalizeEmail(chi.URLParam(r, "email"))

	rooms, err := h.Rooms.ListByHost(r.Context(), email)
	if err != nil {
		logger.ErrorContext(r.Context(), "listing host rooms failed", "error", err, "email", email)
		response.InternalError(w, "error fetching rooms")
		return
	}
	response.JSON(w, http.StatusOK, rooms)
}

// UpdateBooked flips the availability flag on a room. Missing rooms are
// upserted so a stale id still produces a booked marker document.
func (h *RoomsHandler) UpdateBooked(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid room id")
		return
	}

	var in struct {
		Booked bool `json:"booked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}

	res, err := h.Rooms.SetBooked(r.Context(), id, in.Booked)
	if err != nil {
		logger.ErrorContext(r.Context(), "room update failed", "error", err, "room_id", id.Hex())
		response.InternalError(w, "error updating room")
		return
	}
	response.JSON(w, http.StatusOK, res)
}

func (h *RoomsHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	images, err := h.Rooms.Gallery(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "gallery fetch failed", "error", err)
		response.InternalError(w, "error fetching gallery")
		return
	}
	response.JSON(w, http.StatusOK, images)
}
