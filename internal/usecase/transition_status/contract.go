package transition_status

import (
	"context"
	"time"

	"github.com/titikcuci/booking-service/internal/domain"
)

// BookingRepository is what the usecase needs from booking storage. The
// read takes the row lock so the transition guard and the update run
// against the same observed state.
type BookingRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (time.Time, error)
}

// HistoryRepository appends status history rows.
type HistoryRepository interface {
	Append(ctx context.Context, h *domain.StatusHistory) (*domain.StatusHistory, error)
}

// NotificationRepository stores the customer notification emitted on
// visible transitions.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

// TransactionManager makes the status update and the history append atomic.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics is the slice of the service metrics this usecase feeds.
type Metrics interface {
	IncStatusTransition(status string)
	IncNotificationSent()
	IncNotificationFailed()
}

// Logger is the logging interface used by the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
