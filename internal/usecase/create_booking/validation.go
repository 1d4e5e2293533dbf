package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/titikcuci/booking-service/internal/domain"
)

// validateRequest checks the request shape before touching storage.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}
	if req.SlotTime.IsZero() {
		return fmt.Errorf("%w: slot time is required", ErrInvalidInput)
	}
	return nil
}

// validateSlot maps the schedule's verdict onto the usecase error set.
func validateSlot(schedule domain.Schedule, slot, now time.Time) error {
	switch err := schedule.ValidateSlot(slot, now); {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrPastBooking):
		return ErrPastBooking
	case errors.Is(err, domain.ErrInvalidTimeWindow):
		return ErrInvalidTimeWindow
	case errors.Is(err, domain.ErrInvalidSlotAlignment):
		return ErrInvalidSlotAlignment
	default:
		return fmt.Errorf("%w: validate slot: %v", ErrInternal, err)
	}
}
