package get_booking

import (
	"context"

	"github.com/titikcuci/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id, userID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
