package get_availability

import "time"

// SlotState marks one capacity position within a slot.
type SlotState string

const (
	StateAvailable SlotState = "AVAILABLE"
	StateBooked    SlotState = "BOOKED"
)

// Request asks for the slot grid of one location on one date.
type Request struct {
	LocationID int64
	Date       time.Time
}

// Entry is one capacity position: each slot expands to capacity entries,
// and QueuePosition increments continuously across the whole day.
type Entry struct {
	SlotTime      time.Time
	QueuePosition int
	State         SlotState
}

// Response is the full grid for the requested day.
type Response struct {
	LocationID int64
	Date       time.Time
	Entries    []Entry
}
