package get_timeline

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/titikcuci/booking-service/internal/api/handlers"
	"github.com/titikcuci/booking-service/internal/api/middleware"
	"github.com/titikcuci/booking-service/internal/service/bookings"
)

const (
	msgInvalidBookingID = "ID pesanan tidak valid"
	msgNotFound         = "pesanan tidak ditemukan"
	msgMissingUserID    = "ID pengguna tidak ditemukan"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/timeline
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/timeline - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id}/timeline - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	timeline, err := h.service.Timeline(r.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/timeline - Booking not found: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{id}/timeline - Failed to get timeline: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/timeline - Timeline retrieved: booking_id=%d, entries=%d",
		bookingID, len(timeline.Entries))
	handlers.RespondJSON(w, http.StatusOK, timeline)
}
