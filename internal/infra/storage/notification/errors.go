package notification

import "errors"

var (
	// ErrNotificationNotFound is returned when the notification does not
	// exist or belongs to another user.
	ErrNotificationNotFound = errors.New("notification.repository: notification not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("notification.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("notification.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("notification.repository: failed to scan row")
)
