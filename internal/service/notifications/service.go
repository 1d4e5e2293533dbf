// Package notifications serves the user's notification inbox.
package notifications

import (
	"context"
	"errors"
	"fmt"

	notificationRepo "github.com/titikcuci/booking-service/internal/infra/storage/notification"
)

// Service serves notification reads and the read-flag update.
type Service struct {
	notificationRepo NotificationRepository
	logger           Logger
}

// NewService creates the notifications service.
func NewService(notificationRepo NotificationRepository, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// ListByUser returns the user's notifications, newest first.
func (s *Service) ListByUser(ctx context.Context, userID int64) (*NotificationListResponse, error) {
	s.logger.Info("ListByUser: fetching notifications for user=%d", userID)

	notifications, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
	}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, fromDomain(n))
	}
	return resp, nil
}

// MarkRead flips the read flag on one of the user's notifications. A
// notification owned by someone else reports not found.
func (s *Service) MarkRead(ctx context.Context, id, userID int64) error {
	s.logger.Info("MarkRead: marking notification id=%d read for user=%d", id, userID)

	if err := s.notificationRepo.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%d not found for user=%d", id, userID)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}
	return nil
}
