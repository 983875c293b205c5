package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// StepMinutes is the fixed granularity of candidate start times
const StepMinutes = 15

// Business validation constants
const (
	MaxNotesLength      = 500
	MaxReasonLength     = 100
	DefaultMaxRangeDays = 62
	DaysPerWeek         = 7
)

// ActiveStatuses statuses that occupy staff time and take part in
// availability computation and conflict checks
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// ParseDate parses a YYYY-MM-DD date at midnight UTC
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
