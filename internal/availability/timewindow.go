package availability

import (
	"iter"
	"time"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	"github.com/ciphersage74/elegancecoiffure/pkg/types"
)

// Step is the distance between two candidate start times.
const Step = domain.StepMinutes * time.Minute

// Interval is a half-open span [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether a and b share any instant. Touching intervals do not overlap.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Combine places a time of day on a calendar date, keeping the date's location.
func Combine(date time.Time, tod types.TimeString) time.Time {
	y, m, d := date.Date()
	minutes := tod.Minutes()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, date.Location())
}

// IntervalOf returns [date+start, date+end).
func IntervalOf(date time.Time, start, end types.TimeString) Interval {
	return Interval{Start: Combine(date, start), End: Combine(date, end)}
}

// StepWindow yields candidate start times from windowStart in Step increments
// while candidate+duration still fits in windowEnd.
func StepWindow(windowStart, windowEnd time.Time, duration time.Duration) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if duration <= 0 {
			return
		}
		for t := windowStart; !t.Add(duration).After(windowEnd); t = t.Add(Step) {
			if !yield(t) {
				return
			}
		}
	}
}

// Upcoming keeps the slots of date that start after now. A date before now's
// calendar day yields nothing; a later date keeps every slot.
func Upcoming(slots []types.TimeString, date, now time.Time) []types.TimeString {
	y, m, d := date.Date()
	ny, nm, nd := now.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)

	switch {
	case day.Before(today):
		return []types.TimeString{}
	case day.After(today):
		return slots
	}

	current := types.NewTimeString(now)
	result := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if slot.IsAfter(current) {
			result = append(result, slot)
		}
	}
	return result
}
