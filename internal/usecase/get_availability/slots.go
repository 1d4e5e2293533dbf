package get_availability

import (
	"time"

	"github.com/titikcuci/booking-service/internal/domain"
)

// buildGrid expands the day's slot enumeration into capacity entries per
// slot. Within a slot the first occupancy entries are BOOKED and the rest
// AVAILABLE; the queue position never resets, so an empty day at capacity
// K over N slots yields positions 1..N*K.
//
// The occupancy source is the same non-cancelled count the capacity ledger
// enforces at creation, so the view and the limit stay consistent.
func buildGrid(schedule domain.Schedule, date time.Time, counts map[time.Time]int, capacity int) []Entry {
	slots := schedule.EnumerateSlots(date)
	entries := make([]Entry, 0, len(slots)*capacity)

	position := 1
	for _, slot := range slots {
		booked := counts[slot.UTC()]
		if booked > capacity {
			booked = capacity
		}
		for i := 1; i <= capacity; i++ {
			state := StateAvailable
			if i <= booked {
				state = StateBooked
			}
			entries = append(entries, Entry{
				SlotTime:      slot,
				QueuePosition: position,
				State:         state,
			})
			position++
		}
	}
	return entries
}
