package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
)

// DayBlocks is either a list of blocked intervals or the whole day.
type DayBlocks struct {
	wholeDay  bool
	intervals []Interval
}

// Partial blocks only the given intervals.
func Partial(intervals []Interval) DayBlocks {
	return DayBlocks{intervals: intervals}
}

// WholeDay blocks the entire day.
func WholeDay() DayBlocks {
	return DayBlocks{wholeDay: true}
}

func (d DayBlocks) IsWholeDay() bool {
	return d.wholeDay
}

// Intervals is empty for a whole-day block.
func (d DayBlocks) Intervals() []Interval {
	if d.wholeDay {
		return nil
	}
	return d.intervals
}

// Blocks reports whether candidate hits the day's blocks.
func (d DayBlocks) Blocks(candidate Interval) bool {
	if d.wholeDay {
		return true
	}
	for _, b := range d.intervals {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// BlockedIntervals merges active bookings and unavailability periods of one day.
// A period without start or end short-circuits to WholeDay. Intervals are not coalesced.
func BlockedIntervals(date time.Time, bookings []*domain.Booking, periods []*domain.UnavailabilityPeriod) DayBlocks {
	for _, p := range periods {
		if p.IsWholeDay() {
			return WholeDay()
		}
	}

	intervals := make([]Interval, 0, len(bookings)+len(periods))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		intervals = append(intervals, IntervalOf(date, b.StartTime, b.EndTime))
	}
	for _, p := range periods {
		intervals = append(intervals, IntervalOf(date, *p.StartTime, *p.EndTime))
	}

	return Partial(intervals)
}

// Blocked reads bookings and unavailability for (staffID, date) and aggregates them.
func (e *Engine) Blocked(ctx context.Context, staffID int64, date time.Time) (DayBlocks, error) {
	periods, err := e.unavailability.GetByStaffAndDate(ctx, staffID, date)
	if err != nil {
		return DayBlocks{}, fmt.Errorf("%w: unavailability staff_id=%d: %w", ErrRead, staffID, err)
	}
	for _, p := range periods {
		if p.IsWholeDay() {
			return WholeDay(), nil
		}
	}

	bookings, err := e.bookings.GetActiveByStaffAndDate(ctx, staffID, date)
	if err != nil {
		return DayBlocks{}, fmt.Errorf("%w: bookings staff_id=%d: %w", ErrRead, staffID, err)
	}

	return BlockedIntervals(date, bookings, periods), nil
}
