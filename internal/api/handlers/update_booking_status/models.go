package update_booking_status

import (
	"time"

	"github.com/titikcuci/booking-service/internal/domain"
	transitionStatus "github.com/titikcuci/booking-service/internal/usecase/transition_status"
)

// UpdateStatusRequest is the HTTP request model.
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note,omitempty"`
}

// UpdateStatusResponse is the HTTP response model.
type UpdateStatusResponse struct {
	ID            int64  `json:"id"`
	BookingNumber string `json:"bookingNumber"`
	Status        string `json:"status"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model.
func (r *UpdateStatusRequest) ToUseCaseRequest(bookingID int64) *transitionStatus.Request {
	note := ""
	if r.Note != nil {
		note = *r.Note
	}
	return &transitionStatus.Request{
		BookingID: bookingID,
		Status:    domain.BookingStatus(r.Status),
		Note:      note,
	}
}

// FromUseCaseResponse converts the usecase response into the HTTP model.
func FromUseCaseResponse(resp *transitionStatus.Response) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		ID:            resp.ID,
		BookingNumber: resp.BookingNumber,
		Status:        string(resp.Status),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
