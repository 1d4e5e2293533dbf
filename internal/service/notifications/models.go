package notifications

import (
	"time"

	"github.com/titikcuci/booking-service/internal/domain"
)

// NotificationResponse is one notification as returned to the client.
type NotificationResponse struct {
	ID        int64     `json:"id"`
	BookingID *int64    `json:"bookingId,omitempty"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationListResponse is the user's inbox, newest first.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

func fromDomain(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		BookingID: n.BookingID,
		Category:  string(n.Category),
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
