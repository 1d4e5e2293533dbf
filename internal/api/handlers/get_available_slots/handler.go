package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/titikcuci/booking-service/internal/api/handlers"
	"github.com/titikcuci/booking-service/internal/domain"
	getAvailability "github.com/titikcuci/booking-service/internal/usecase/get_availability"
)

const (
	msgInvalidLocationID = "ID lokasi tidak valid"
	msgInvalidDate       = "format tanggal tidak valid, gunakan YYYY-MM-DD"
	msgLocationNotFound  = "lokasi tidak ditemukan"
)

type Handler struct {
	useCase  GetAvailabilityUseCase
	logger   Logger
	location *time.Location
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger, location *time.Location) *Handler {
	return &Handler{
		useCase:  useCase,
		logger:   logger,
		location: location,
	}
}

// Handle GET /api/v1/locations/{locationId}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/slots - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, r.URL.Query().Get("date"), h.location)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		LocationID: locationID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrLocationNotFound):
			h.logger.Warn("GET /locations/{id}/slots - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /locations/{id}/slots - Invalid input: location_id=%d, error=%v", locationID, err)
			handlers.RespondBadRequest(w, msgInvalidLocationID)

		default:
			h.logger.Error("GET /locations/{id}/slots - Failed to get availability: location_id=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locations/{id}/slots - Availability retrieved: location_id=%d, slots=%d",
		locationID, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.location))
}
