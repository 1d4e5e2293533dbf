package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingNumber(t *testing.T) {
	date := time.Date(2025, 11, 29, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "TC-2911202503", BookingNumber("TC-", date, 3))
	assert.Equal(t, "TC-2911202512", BookingNumber("TC-", date, 12))

	t.Run("DayAndMonthZeroPadded", func(t *testing.T) {
		date := time.Date(2026, 2, 5, 8, 0, 0, 0, time.UTC)
		assert.Equal(t, "TC-0502202601", BookingNumber("TC-", date, 1))
	})

	t.Run("SequenceGrowsPastTwoDigits", func(t *testing.T) {
		date := time.Date(2026, 2, 5, 8, 0, 0, 0, time.UTC)
		assert.Equal(t, "TC-05022026107", BookingNumber("TC-", date, 107))
	})
}
