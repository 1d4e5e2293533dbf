package transition_status

import (
	"time"

	"github.com/titikcuci/booking-service/internal/domain"
)

// Request asks to move one booking to a target status, with an optional
// note for the history row.
type Request struct {
	BookingID int64
	Status    domain.BookingStatus
	Note      string
}

// Response is the booking after the transition.
type Response struct {
	ID            int64
	BookingNumber string
	Status        domain.BookingStatus
	UpdatedAt     time.Time
}
