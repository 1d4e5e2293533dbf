package create_booking

import (
	"time"

	"github.com/titikcuci/booking-service/internal/domain"
)

// Request is the creation request.
type Request struct {
	UserID     int64
	VehicleID  int64
	ServiceID  int64
	LocationID int64
	SlotTime   time.Time // exact slot-start timestamp, UTC
}

// VehicleInfo is the denormalized vehicle display data.
type VehicleInfo struct {
	Plate string
	Type  string
	Model *string
}

// ServiceInfo is the denormalized service display data.
type ServiceInfo struct {
	Name        string
	Description string
}

// Response is the persisted booking with its generated identifiers and the
// display code. QRCode is empty when the encoder failed; the booking is
// valid regardless.
type Response struct {
	ID            int64
	BookingNumber string
	QueueNumber   int
	BookingDate   time.Time
	Status        domain.BookingStatus
	PaymentStatus domain.PaymentStatus
	TotalPrice    float64
	Vehicle       VehicleInfo
	Service       ServiceInfo
	QRCode        string
	CreatedAt     time.Time
}
