package create_booking

import (
	"context"
	"time"

	"github.com/titikcuci/booking-service/internal/domain"
)

// BookingRepository is what the usecase needs from booking storage.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	CountAtSlot(ctx context.Context, locationID int64, slot time.Time) (int, error)
	CountCreatedBetween(ctx context.Context, locationID int64, from, to time.Time) (int, error)
}

// HistoryRepository appends status history rows.
type HistoryRepository interface {
	Append(ctx context.Context, h *domain.StatusHistory) (*domain.StatusHistory, error)
}

// CatalogRepository resolves the collaborator entities a booking needs.
type CatalogRepository interface {
	FindOwnedVehicle(ctx context.Context, vehicleID, ownerID int64) (*domain.Vehicle, error)
	FindService(ctx context.Context, serviceID int64) (*domain.Service, error)
	FindLocation(ctx context.Context, locationID int64) (*domain.Location, error)
}

// TransactionManager runs the capacity check, sequence read and inserts as
// one serializable unit.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// DisplayEncoder renders the booking number for client display. A failing
// encoder never fails the booking.
type DisplayEncoder interface {
	EncodeDataURL(bookingNumber string) (string, error)
}

// Metrics is the slice of the service metrics this usecase feeds.
type Metrics interface {
	IncBookingsCreated()
	IncSlotFull()
}

// TimeProvider returns the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
