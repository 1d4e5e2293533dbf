package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrPastBooking is returned when the slot is not strictly in the future.
	ErrPastBooking = errors.New("create_booking: booking time is in the past")

	// ErrInvalidTimeWindow is returned when the slot falls outside the
	// operating window.
	ErrInvalidTimeWindow = errors.New("create_booking: booking time is outside operating hours")

	// ErrInvalidSlotAlignment is returned when the slot is not on a grid
	// boundary.
	ErrInvalidSlotAlignment = errors.New("create_booking: booking time is not on a slot boundary")

	// ErrNotOwner is returned when the vehicle does not belong to the
	// requesting user (or does not exist; the two are not distinguished).
	ErrNotOwner = errors.New("create_booking: vehicle is not owned by user")

	// ErrServiceNotFound is returned when the service does not exist.
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrLocationNotFound is returned when the location does not exist.
	ErrLocationNotFound = errors.New("create_booking: location not found")

	// ErrSlotFull is returned when the slot already holds the configured
	// number of non-cancelled bookings. Expected and retryable with a
	// different slot, not a fault.
	ErrSlotFull = errors.New("create_booking: slot is full")

	// ErrInternal is returned for storage and other unexpected failures.
	ErrInternal = errors.New("create_booking: internal error")
)
