package domain

import "time"

// BookingStatus represents the workflow status of a booking.
type BookingStatus string

const (
	StatusBooked      BookingStatus = "BOOKED"
	StatusDiterima    BookingStatus = "DITERIMA"
	StatusDicuci      BookingStatus = "DICUCI"
	StatusSiapDiambil BookingStatus = "SIAP_DIAMBIL"
	StatusSelesai     BookingStatus = "SELESAI"
	StatusDibatalkan  BookingStatus = "DIBATALKAN"
	StatusExpired     BookingStatus = "EXPIRED"
)

// PaymentStatus is recorded on the booking but never computed here.
type PaymentStatus string

const (
	PaymentBelumBayar PaymentStatus = "BELUM_BAYAR"
	PaymentLunas      PaymentStatus = "LUNAS"
)

// Booking is the central entity: one reserved slot at one location for one
// vehicle. TotalPrice is copied from the service at creation so later price
// edits never affect existing bookings. Status is mutated only through the
// transition usecase, never by direct field edits.
type Booking struct {
	ID            int64
	BookingNumber string
	QueueNumber   int
	UserID        int64
	VehicleID     int64
	ServiceID     int64
	LocationID    int64
	BookingDate   time.Time
	TotalPrice    float64
	Status        BookingStatus
	PaymentStatus PaymentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// pipelineRank orders the happy-path statuses; side terminals have no rank.
var pipelineRank = map[BookingStatus]int{
	StatusBooked:      0,
	StatusDiterima:    1,
	StatusDicuci:      2,
	StatusSiapDiambil: 3,
	StatusSelesai:     4,
}

// IsValidStatus reports whether s is a member of the known status set.
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusBooked, StatusDiterima, StatusDicuci, StatusSiapDiambil,
		StatusSelesai, StatusDibatalkan, StatusExpired:
		return true
	}
	return false
}

// IsTerminal reports whether s admits no further transitions.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusSelesai || s == StatusDibatalkan || s == StatusExpired
}

// IsCancelled reports whether the booking was cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusDibatalkan
}

// OccupiesSlot reports whether the booking counts against its slot's
// capacity. Only cancellation frees the slot.
func (b *Booking) OccupiesSlot() bool {
	return b.Status != StatusDibatalkan
}

// CanTransitionTo reports whether moving from the current status to target
// is a valid forward move: strictly forward along the pipeline, or into a
// side terminal (DIBATALKAN, EXPIRED) from any non-terminal status. Used
// only when strict transition checking is enabled.
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	if b.Status.IsTerminal() {
		return false
	}
	if target == StatusDibatalkan || target == StatusExpired {
		return true
	}
	from, ok := pipelineRank[b.Status]
	if !ok {
		return false
	}
	to, ok := pipelineRank[target]
	if !ok {
		return false
	}
	return to > from
}
