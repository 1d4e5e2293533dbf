package get_available_slots

import (
	"time"

	"github.com/titikcuci/booking-service/internal/domain"
	getAvailability "github.com/titikcuci/booking-service/internal/usecase/get_availability"
)

const timeFormat = "15:04"

// SlotEntry is one capacity position in the day's grid.
type SlotEntry struct {
	StartTime     string `json:"startTime"` // "08:30", civil time
	QueuePosition int    `json:"queuePosition"`
	State         string `json:"state"`
}

// AvailabilityResponse is the full grid for one location and date.
type AvailabilityResponse struct {
	LocationID int64       `json:"locationId"`
	Date       string      `json:"date"`
	Slots      []SlotEntry `json:"slots"`
}

// FromUseCaseResponse converts the grid, rendering slot times in the
// service timezone.
func FromUseCaseResponse(resp *getAvailability.Response, loc *time.Location) *AvailabilityResponse {
	out := &AvailabilityResponse{
		LocationID: resp.LocationID,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      make([]SlotEntry, 0, len(resp.Entries)),
	}
	for _, e := range resp.Entries {
		out.Slots = append(out.Slots, SlotEntry{
			StartTime:     e.SlotTime.In(loc).Format(timeFormat),
			QueuePosition: e.QueuePosition,
			State:         string(e.State),
		})
	}
	return out
}
