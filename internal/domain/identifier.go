package domain

import (
	"fmt"
	"time"
)

// BookingNumber derives the human-readable booking identifier from the
// booking date and the per-location-per-day sequence number:
// prefix + DDMMYYYY + zero-padded sequence (TC-2911202503). The date must
// already be in the schedule's civil zone. Uniqueness rests on the
// sequence being read in the same transaction as the insert, backed by the
// unique index on booking_number.
func BookingNumber(prefix string, date time.Time, seq int) string {
	return fmt.Sprintf("%s%02d%02d%d%02d", prefix, date.Day(), int(date.Month()), date.Year(), seq)
}
