package notifications

import "errors"

var (
	// ErrNotificationNotFound is returned when the notification does not
	// exist or belongs to another user.
	ErrNotificationNotFound = errors.New("notifications: notification not found")

	// ErrInternal is returned for storage and other unexpected failures.
	ErrInternal = errors.New("notifications: internal error")
)
