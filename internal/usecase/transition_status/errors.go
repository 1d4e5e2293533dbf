package transition_status

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("transition_status: booking not found")

	// ErrInvalidStatus is returned when the target status is not a member
	// of the known status set. The booking and its history are untouched.
	ErrInvalidStatus = errors.New("transition_status: invalid status")

	// ErrTransitionNotAllowed is returned only in strict mode, when the
	// target is not a forward move from the current status.
	ErrTransitionNotAllowed = errors.New("transition_status: transition not allowed from current status")

	// ErrInternal is returned for storage and other unexpected failures.
	ErrInternal = errors.New("transition_status: internal error")
)
