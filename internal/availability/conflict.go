package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
)

// HasConflict reports whether an active booking of staffID on date overlaps proposed.
// Call it inside the same transaction as the insert it guards.
func (e *Engine) HasConflict(ctx context.Context, staffID int64, date time.Time, proposed Interval) (bool, error) {
	bookings, err := e.bookings.GetActiveByStaffAndDate(ctx, staffID, date)
	if err != nil {
		return false, fmt.Errorf("%w: bookings staff_id=%d: %w", ErrRead, staffID, err)
	}

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if IntervalOf(date, b.StartTime, b.EndTime).Overlaps(proposed) {
			return true, nil
		}
	}

	return false, nil
}

// FitsWorkingHours reports whether proposed lies inside one working window of
// staffID and hits no unavailability period. Bookings are not considered.
func (e *Engine) FitsWorkingHours(ctx context.Context, staffID int64, date time.Time, proposed Interval) (bool, error) {
	windows, err := e.hours.GetByStaffAndDay(ctx, staffID, domain.DayOfWeek(date))
	if err != nil {
		return false, fmt.Errorf("%w: working hours staff_id=%d: %w", ErrRead, staffID, err)
	}

	inside := false
	for _, w := range windows {
		window := IntervalOf(date, w.StartTime, w.EndTime)
		if !proposed.Start.Before(window.Start) && !proposed.End.After(window.End) {
			inside = true
			break
		}
	}
	if !inside {
		return false, nil
	}

	periods, err := e.unavailability.GetByStaffAndDate(ctx, staffID, date)
	if err != nil {
		return false, fmt.Errorf("%w: unavailability staff_id=%d: %w", ErrRead, staffID, err)
	}

	return !BlockedIntervals(date, nil, periods).Blocks(proposed), nil
}
