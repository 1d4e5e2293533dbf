package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/titikcuci/booking-service/internal/api/handlers"
	"github.com/titikcuci/booking-service/internal/api/middleware"
	createBooking "github.com/titikcuci/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "body permintaan tidak valid"
	msgInvalidDateTime    = "format tanggal atau jam tidak valid, gunakan YYYY-MM-DD dan HH:MM"
	msgMissingUserID      = "ID pengguna tidak ditemukan"
	msgPastBooking        = "tidak dapat membuat pesanan untuk waktu yang sudah lewat"
	msgOutsideHours       = "jam yang dipilih di luar jam operasional"
	msgBadSlotAlignment   = "jam yang dipilih tidak sesuai dengan jadwal slot"
	msgVehicleNotOwned    = "kendaraan tidak ditemukan atau bukan milik Anda"
	msgServiceNotFound    = "layanan tidak ditemukan"
	msgLocationNotFound   = "lokasi tidak ditemukan"
	msgSlotFull           = "slot pada jam tersebut sudah penuh, silakan pilih jam lain"
)

type Handler struct {
	useCase  CreateBookingUseCase
	logger   Logger
	location *time.Location
}

func NewHandler(useCase CreateBookingUseCase, logger Logger, location *time.Location) *Handler {
	return &Handler{
		useCase:  useCase,
		logger:   logger,
		location: location,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, h.location)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /bookings - Slot full: user_id=%d, location_id=%d", userID, req.LocationID)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createBooking.ErrPastBooking):
			h.logger.Warn("POST /bookings - Past booking: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgPastBooking)

		case errors.Is(err, createBooking.ErrInvalidTimeWindow):
			h.logger.Warn("POST /bookings - Outside operating hours: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrInvalidSlotAlignment):
			h.logger.Warn("POST /bookings - Misaligned slot: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgBadSlotAlignment)

		case errors.Is(err, createBooking.ErrNotOwner):
			h.logger.Warn("POST /bookings - Vehicle not owned: user_id=%d, vehicle_id=%d", userID, req.VehicleID)
			handlers.RespondForbidden(w, msgVehicleNotOwned)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrLocationNotFound):
			h.logger.Warn("POST /bookings - Location not found: location_id=%d", req.LocationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_number=%s, user_id=%d, queue=%d",
		result.BookingNumber, userID, result.QueueNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
