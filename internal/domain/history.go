package domain

import "time"

// StatusHistory is one immutable audit row: the status a booking reached,
// when, and a free-text note. Rows are only ever appended; ordered by
// CreatedAt ascending they reconstruct the booking's path through the
// pipeline.
type StatusHistory struct {
	ID        int64
	BookingID int64
	Status    BookingStatus
	Note      string
	CreatedAt time.Time
}
