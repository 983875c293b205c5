package domain

import (
	"time"

	"github.com/ciphersage74/elegancecoiffure/pkg/types"
)

// WorkingHoursWindow is one recurring working window of a staff member.
// DayOfWeek uses Monday=0 ... Sunday=6.
type WorkingHoursWindow struct {
	ID        int64
	StaffID   int64
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
}

// IsValid checks the day range and StartTime < EndTime
func (w *WorkingHoursWindow) IsValid() bool {
	return w.DayOfWeek >= 0 && w.DayOfWeek < DaysPerWeek &&
		w.StartTime.Validate() == nil && w.EndTime.Validate() == nil &&
		w.StartTime.IsBefore(w.EndTime)
}

// UnavailabilityPeriod is a date-specific block on a staff member's time.
// A missing StartTime or EndTime blocks the whole day.
type UnavailabilityPeriod struct {
	ID          int64
	StaffID     int64
	Date        time.Time
	StartTime   *types.TimeString
	EndTime     *types.TimeString
	IsAvailable bool
	Reason      *string
}

// IsWholeDay returns true if the period blocks the entire day
func (p *UnavailabilityPeriod) IsWholeDay() bool {
	return p.StartTime == nil || p.EndTime == nil
}

// DayOfWeek returns the weekday of date with Monday=0 ... Sunday=6
func DayOfWeek(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
