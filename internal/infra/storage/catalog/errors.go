package catalog

import "errors"

var (
	// ErrVehicleNotFound is returned when the vehicle does not exist or is
	// not owned by the given user.
	ErrVehicleNotFound = errors.New("catalog.repository: vehicle not found")

	// ErrServiceNotFound is returned when the service does not exist.
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrLocationNotFound is returned when the location does not exist.
	ErrLocationNotFound = errors.New("catalog.repository: location not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
