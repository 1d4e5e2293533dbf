package get_notifications

import (
	"context"

	"github.com/titikcuci/booking-service/internal/service/notifications"
)

type NotificationService interface {
	ListByUser(ctx context.Context, userID int64) (*notifications.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
