package get_availability

import (
	"context"
	"time"

	"github.com/titikcuci/booking-service/internal/domain"
)

// BookingRepository is what the projector needs from booking storage.
type BookingRepository interface {
	SlotCounts(ctx context.Context, locationID int64, from, to time.Time) (map[time.Time]int, error)
}

// CatalogRepository resolves the location.
type CatalogRepository interface {
	FindLocation(ctx context.Context, locationID int64) (*domain.Location, error)
}

// Logger is the logging interface used by the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
