// Package models holds the DTOs the bookings read side exposes to the API.
package models

import (
	"time"

	"github.com/titikcuci/booking-service/internal/domain"
)

// VehicleInfo is the denormalized vehicle block on a booking response.
type VehicleInfo struct {
	ID    int64   `json:"id"`
	Plate string  `json:"plate"`
	Type  string  `json:"type"`
	Model *string `json:"model,omitempty"`
}

// ServiceInfo is the denormalized wash package block on a booking response.
type ServiceInfo struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// BookingResponse is one booking as returned to the client.
type BookingResponse struct {
	ID            int64     `json:"id"`
	BookingNumber string    `json:"bookingNumber"`
	QueueNumber   int       `json:"queueNumber"`
	UserID        int64     `json:"userId"`
	LocationID    int64     `json:"locationId"`
	BookingDate   time.Time `json:"bookingDate"`
	TotalPrice    float64   `json:"totalPrice"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`

	Vehicle *VehicleInfo `json:"vehicle,omitempty"`
	Service *ServiceInfo `json:"service,omitempty"`
	QRCode  string       `json:"qrCode,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse is the user's booking history.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// TimelineEntry is one row of the status audit trail.
type TimelineEntry struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

// TimelineResponse is the booking's full status history, oldest first.
type TimelineResponse struct {
	BookingID int64           `json:"bookingId"`
	Entries   []TimelineEntry `json:"entries"`
}

// FromDomainBooking converts a domain booking into its DTO. The vehicle,
// service and QR blocks are filled by the service when available.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		QueueNumber:   b.QueueNumber,
		UserID:        b.UserID,
		LocationID:    b.LocationID,
		BookingDate:   b.BookingDate,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList converts a slice of domain bookings.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}

// FromDomainHistory converts the audit trail of one booking.
func FromDomainHistory(bookingID int64, entries []*domain.StatusHistory) *TimelineResponse {
	resp := &TimelineResponse{
		BookingID: bookingID,
		Entries:   make([]TimelineEntry, 0, len(entries)),
	}
	for _, h := range entries {
		resp.Entries = append(resp.Entries, TimelineEntry{
			Status:    string(h.Status),
			Note:      h.Note,
			CreatedAt: h.CreatedAt,
		})
	}
	return resp
}
