package domain

import "time"

// NotificationCategory distinguishes status updates from reminder and
// promotional messages.
type NotificationCategory string

const (
	CategoryStatusUpdate NotificationCategory = "STATUS_UPDATE"
	CategoryReminder     NotificationCategory = "REMINDER"
	CategoryPromo        NotificationCategory = "PROMO"
)

// Notification is a user-facing message, optionally tied to a booking.
// IsRead is the only mutable field, and only the owner may flip it.
type Notification struct {
	ID        int64
	UserID    int64
	BookingID *int64
	Category  NotificationCategory
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// statusNotifications holds the customer-facing content per visible status.
var statusNotifications = map[BookingStatus]struct {
	Title   string
	Message string
}{
	StatusDiterima: {
		Title:   "Kendaraan Diterima",
		Message: "Kendaraan Anda telah diterima dan masuk antrian pencucian.",
	},
	StatusDicuci: {
		Title:   "Sedang Dicuci",
		Message: "Kendaraan Anda sedang dalam proses pencucian.",
	},
	StatusSiapDiambil: {
		Title:   "Siap Diambil",
		Message: "Kendaraan Anda sudah selesai dicuci dan siap diambil.",
	},
	StatusSelesai: {
		Title:   "Transaksi Selesai",
		Message: "Terima kasih telah menggunakan layanan kami.",
	},
}

// StatusNotification returns the notification content for a status, and
// whether that status is customer-visible at all. Transitions to other
// statuses emit nothing.
func StatusNotification(s BookingStatus) (title, message string, ok bool) {
	c, ok := statusNotifications[s]
	return c.Title, c.Message, ok
}
