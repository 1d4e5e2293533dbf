package domain

// Default operating window and capacity. All of these are configuration
// values injected at startup; the defaults match the network-wide policy.
const (
	DefaultOpenHour     = 8
	DefaultCloseHour    = 18
	DefaultSlotMinutes  = 30
	DefaultSlotCapacity = 3

	DefaultNumberPrefix = "TC-"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
