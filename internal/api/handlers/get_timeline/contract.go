package get_timeline

import (
	"context"

	"github.com/titikcuci/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	Timeline(ctx context.Context, bookingID, userID int64) (*models.TimelineResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
