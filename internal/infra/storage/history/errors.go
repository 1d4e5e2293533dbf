package history

import "errors"

var (
	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("history.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("history.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("history.repository: failed to scan row")
)
