package bookings

import (
	"context"

	"github.com/titikcuci/booking-service/internal/domain"
)

// BookingRepository is the booking storage surface the read side needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error)
}

// HistoryRepository reads the status audit trail.
type HistoryRepository interface {
	ListByBooking(ctx context.Context, bookingID int64) ([]*domain.StatusHistory, error)
}

// CatalogRepository resolves display data for bookings.
type CatalogRepository interface {
	FindVehicle(ctx context.Context, vehicleID int64) (*domain.Vehicle, error)
	FindService(ctx context.Context, serviceID int64) (*domain.Service, error)
}

// DisplayEncoder renders the booking number for pickup verification.
type DisplayEncoder interface {
	EncodeDataURL(bookingNumber string) (string, error)
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
