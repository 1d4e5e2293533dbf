package get_availability

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrLocationNotFound is returned when the location does not exist.
	ErrLocationNotFound = errors.New("get_availability: location not found")

	// ErrInternal is returned for storage and other unexpected failures.
	ErrInternal = errors.New("get_availability: internal error")
)
