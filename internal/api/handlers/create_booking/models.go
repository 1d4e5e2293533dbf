package create_booking

import (
	"fmt"
	"time"

	"github.com/titikcuci/booking-service/internal/domain"
	createBooking "github.com/titikcuci/booking-service/internal/usecase/create_booking"
)

const timeFormat = "15:04"

// CreateBookingRequest is the HTTP request model. The slot is sent as a
// civil date and start time in the location's timezone.
type CreateBookingRequest struct {
	VehicleID   int64  `json:"vehicleId"`
	ServiceID   int64  `json:"serviceId"`
	LocationID  int64  `json:"locationId"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "08:30"
}

// BookingResponse is the HTTP response model.
type BookingResponse struct {
	ID            int64   `json:"id"`
	BookingNumber string  `json:"bookingNumber"`
	QueueNumber   int     `json:"queueNumber"`
	BookingDate   string  `json:"bookingDate"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	TotalPrice    float64 `json:"totalPrice"`

	VehiclePlate string  `json:"vehiclePlate"`
	VehicleType  string  `json:"vehicleType"`
	VehicleModel *string `json:"vehicleModel,omitempty"`
	ServiceName  string  `json:"serviceName"`

	QRCode    string `json:"qrCode,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest parses the civil date and time into the slot timestamp,
// interpreted in the service timezone.
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64, loc *time.Location) (*createBooking.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.BookingDate, loc)
	if err != nil {
		return nil, fmt.Errorf("parse booking date: %w", err)
	}
	start, err := time.Parse(timeFormat, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse start time: %w", err)
	}

	slot := time.Date(date.Year(), date.Month(), date.Day(), start.Hour(), start.Minute(), 0, 0, loc)

	return &createBooking.Request{
		UserID:     userID,
		VehicleID:  r.VehicleID,
		ServiceID:  r.ServiceID,
		LocationID: r.LocationID,
		SlotTime:   slot.UTC(),
	}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		BookingNumber: resp.BookingNumber,
		QueueNumber:   resp.QueueNumber,
		BookingDate:   resp.BookingDate.Format(time.RFC3339),
		Status:        string(resp.Status),
		PaymentStatus: string(resp.PaymentStatus),
		TotalPrice:    resp.TotalPrice,
		VehiclePlate:  resp.Vehicle.Plate,
		VehicleType:   resp.Vehicle.Type,
		VehicleModel:  resp.Vehicle.Model,
		ServiceName:   resp.Service.Name,
		QRCode:        resp.QRCode,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
