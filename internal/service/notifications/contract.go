package notifications

import (
	"context"

	"github.com/titikcuci/booking-service/internal/domain"
)

// NotificationRepository is the storage surface the service needs.
type NotificationRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
