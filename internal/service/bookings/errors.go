package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist or
	// belongs to another user.
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal is returned for storage and other unexpected failures.
	ErrInternal = errors.New("bookings: internal error")
)
