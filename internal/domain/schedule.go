package domain

import (
	"errors"
	"time"
)

var (
	// ErrPastBooking is returned when the slot timestamp is not strictly in
	// the future relative to the request time.
	ErrPastBooking = errors.New("domain: booking time is in the past")

	// ErrInvalidTimeWindow is returned when the slot timestamp falls outside
	// the daily operating window.
	ErrInvalidTimeWindow = errors.New("domain: booking time is outside the operating window")

	// ErrInvalidSlotAlignment is returned when the slot timestamp is not on
	// a slot-grid boundary.
	ErrInvalidSlotAlignment = errors.New("domain: booking time is not aligned to the slot grid")
)

// Schedule is the pure time-window math for one operating policy: a fixed
// daily window at fixed slot granularity, expressed in one civil time zone.
// All conversions from civil time to UTC happen here and nowhere else.
type Schedule struct {
	loc         *time.Location
	openHour    int
	closeHour   int
	slotMinutes int
}

// NewSchedule builds a schedule for the given civil zone and window.
func NewSchedule(loc *time.Location, openHour, closeHour, slotMinutes int) Schedule {
	if loc == nil {
		loc = time.UTC
	}
	return Schedule{
		loc:         loc,
		openHour:    openHour,
		closeHour:   closeHour,
		slotMinutes: slotMinutes,
	}
}

// Location returns the schedule's civil time zone.
func (s Schedule) Location() *time.Location {
	return s.loc
}

// Civil converts an instant into the schedule's civil zone, for date
// formatting and day scoping.
func (s Schedule) Civil(t time.Time) time.Time {
	return t.In(s.loc)
}

// SlotMinutes returns the slot granularity in minutes.
func (s Schedule) SlotMinutes() int {
	return s.slotMinutes
}

// SlotsPerDay returns the number of slots in the operating window.
func (s Schedule) SlotsPerDay() int {
	return (s.closeHour - s.openHour) * 60 / s.slotMinutes
}

// ValidateSlot checks that ts is a bookable slot start: strictly in the
// future, inside the operating window, and on a grid boundary.
func (s Schedule) ValidateSlot(ts, now time.Time) error {
	if !ts.After(now) {
		return ErrPastBooking
	}

	local := ts.In(s.loc)
	if local.Hour() < s.openHour || local.Hour() >= s.closeHour {
		return ErrInvalidTimeWindow
	}
	if local.Minute()%s.slotMinutes != 0 || local.Second() != 0 || local.Nanosecond() != 0 {
		return ErrInvalidSlotAlignment
	}
	return nil
}

// DayBounds returns the [open, close] instants of the operating window for
// the calendar day containing date, in UTC.
func (s Schedule) DayBounds(date time.Time) (time.Time, time.Time) {
	local := date.In(s.loc)
	y, m, d := local.Date()
	open := time.Date(y, m, d, s.openHour, 0, 0, 0, s.loc)
	close := time.Date(y, m, d, s.closeHour, 0, 0, 0, s.loc)
	return open.UTC(), close.UTC()
}

// CalendarDayBounds returns the [00:00, 24:00) instants of the civil day
// containing date, in UTC. Used for "created today" sequence counts.
func (s Schedule) CalendarDayBounds(date time.Time) (time.Time, time.Time) {
	local := date.In(s.loc)
	y, m, d := local.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, s.loc)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

// EnumerateSlots returns the ordered slot-start instants of the operating
// window for the calendar day containing date. A slot is included only if
// it also ends within the window, so a 08:00-18:00 window at 30 minutes
// yields 20 slots, 08:00 through 17:30.
func (s Schedule) EnumerateSlots(date time.Time) []time.Time {
	open, close := s.DayBounds(date)
	step := time.Duration(s.slotMinutes) * time.Minute

	slots := make([]time.Time, 0, s.SlotsPerDay())
	for cur := open; !cur.Add(step).After(close); cur = cur.Add(step) {
		slots = append(slots, cur)
	}
	return slots
}
