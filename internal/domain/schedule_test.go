package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleValidateSlot(t *testing.T) {
	schedule := NewSchedule(time.UTC, 8, 18, 30)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ValidSlot", func(t *testing.T) {
		slot := time.Date(2026, 9, 2, 8, 30, 0, 0, time.UTC)
		assert.NoError(t, schedule.ValidateSlot(slot, now))
	})

	t.Run("PastSlot", func(t *testing.T) {
		slot := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
		assert.ErrorIs(t, schedule.ValidateSlot(slot, now), ErrPastBooking)
	})

	t.Run("SlotEqualToNow", func(t *testing.T) {
		assert.ErrorIs(t, schedule.ValidateSlot(now, now), ErrPastBooking)
	})

	t.Run("BeforeOpening", func(t *testing.T) {
		// The window check runs before alignment, so 07:45 reports the
		// window error even though it is also off-grid.
		slot := time.Date(2026, 9, 2, 7, 45, 0, 0, time.UTC)
		assert.ErrorIs(t, schedule.ValidateSlot(slot, now), ErrInvalidTimeWindow)
	})

	t.Run("AtClosingHour", func(t *testing.T) {
		slot := time.Date(2026, 9, 2, 18, 0, 0, 0, time.UTC)
		assert.ErrorIs(t, schedule.ValidateSlot(slot, now), ErrInvalidTimeWindow)
	})

	t.Run("MisalignedMinutes", func(t *testing.T) {
		slot := time.Date(2026, 9, 2, 8, 15, 0, 0, time.UTC)
		assert.ErrorIs(t, schedule.ValidateSlot(slot, now), ErrInvalidSlotAlignment)
	})

	t.Run("NonZeroSeconds", func(t *testing.T) {
		slot := time.Date(2026, 9, 2, 8, 30, 10, 0, time.UTC)
		assert.ErrorIs(t, schedule.ValidateSlot(slot, now), ErrInvalidSlotAlignment)
	})

	t.Run("WindowCheckedInCivilZone", func(t *testing.T) {
		jakarta, err := time.LoadLocation("Asia/Jakarta")
		require.NoError(t, err)
		local := NewSchedule(jakarta, 8, 18, 30)

		// 01:00 UTC is 08:00 WIB, inside the window.
		slot := time.Date(2026, 9, 2, 1, 0, 0, 0, time.UTC)
		assert.NoError(t, local.ValidateSlot(slot, now))

		// 12:00 UTC is 19:00 WIB, after closing.
		slot = time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)
		assert.ErrorIs(t, local.ValidateSlot(slot, now), ErrInvalidTimeWindow)
	})
}

func TestScheduleEnumerateSlots(t *testing.T) {
	schedule := NewSchedule(time.UTC, 8, 18, 30)
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	slots := schedule.EnumerateSlots(date)

	require.Len(t, slots, 20)
	assert.Equal(t, time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC), slots[0])
	assert.Equal(t, time.Date(2026, 9, 2, 17, 30, 0, 0, time.UTC), slots[len(slots)-1])

	// Every slot must itself pass validation.
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	for _, slot := range slots {
		assert.NoError(t, schedule.ValidateSlot(slot, now))
	}
}

func TestScheduleSlotsPerDay(t *testing.T) {
	assert.Equal(t, 20, NewSchedule(time.UTC, 8, 18, 30).SlotsPerDay())
	assert.Equal(t, 10, NewSchedule(time.UTC, 8, 18, 60).SlotsPerDay())
}

func TestScheduleDayBounds(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	schedule := NewSchedule(jakarta, 8, 18, 30)

	date := time.Date(2026, 9, 2, 10, 0, 0, 0, jakarta)
	open, close := schedule.DayBounds(date)

	// 08:00 and 18:00 WIB are 01:00 and 11:00 UTC.
	assert.Equal(t, time.Date(2026, 9, 2, 1, 0, 0, 0, time.UTC), open)
	assert.Equal(t, time.Date(2026, 9, 2, 11, 0, 0, 0, time.UTC), close)
}

func TestScheduleCalendarDayBounds(t *testing.T) {
	schedule := NewSchedule(time.UTC, 8, 18, 30)
	at := time.Date(2026, 9, 2, 15, 42, 7, 0, time.UTC)

	start, end := schedule.CalendarDayBounds(at)

	assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), end)
}
