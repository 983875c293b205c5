package availability

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	"github.com/ciphersage74/elegancecoiffure/pkg/types"
)

// Engine computes availability from working hours, unavailability and bookings.
// It holds no state between calls.
type Engine struct {
	hours          WorkingHoursReader
	unavailability UnavailabilityReader
	bookings       BookingReader
	staff          StaffReader
}

func NewEngine(
	hours WorkingHoursReader,
	unavailability UnavailabilityReader,
	bookings BookingReader,
	staff StaffReader,
) *Engine {
	return &Engine{
		hours:          hours,
		unavailability: unavailability,
		bookings:       bookings,
		staff:          staff,
	}
}

// GenerateSlots returns the sorted, deduplicated start times at which staffID
// can perform service on date.
func (e *Engine) GenerateSlots(ctx context.Context, service *domain.Service, staffID int64, date time.Time) ([]types.TimeString, error) {
	duration := service.Duration()
	if duration <= 0 {
		return nil, fmt.Errorf("%w: service_id=%d duration=%d", ErrInvalidDuration, service.ID, service.DurationMinutes)
	}

	windows, err := e.hours.GetByStaffAndDay(ctx, staffID, domain.DayOfWeek(date))
	if err != nil {
		return nil, fmt.Errorf("%w: working hours staff_id=%d: %w", ErrRead, staffID, err)
	}
	if len(windows) == 0 {
		return []types.TimeString{}, nil
	}

	blocks, err := e.Blocked(ctx, staffID, date)
	if err != nil {
		return nil, err
	}

	return slotsFor(date, windows, blocks, duration), nil
}

// slotsFor walks each window independently and keeps candidates that hit no block.
func slotsFor(date time.Time, windows []*domain.WorkingHoursWindow, blocks DayBlocks, duration time.Duration) []types.TimeString {
	if blocks.IsWholeDay() {
		return []types.TimeString{}
	}

	seen := make(map[types.TimeString]struct{})
	for _, w := range windows {
		window := IntervalOf(date, w.StartTime, w.EndTime)
		for start := range StepWindow(window.Start, window.End, duration) {
			if blocks.Blocks(Interval{Start: start, End: start.Add(duration)}) {
				continue
			}
			seen[types.NewTimeString(start)] = struct{}{}
		}
	}

	return sortedTimes(seen)
}

func sortedTimes(set map[types.TimeString]struct{}) []types.TimeString {
	result := make([]types.TimeString, 0, len(set))
	for t := range set {
		result = append(result, t)
	}
	slices.Sort(result)
	return result
}
