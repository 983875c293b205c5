package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	"github.com/ciphersage74/elegancecoiffure/pkg/types"
)

// AnyStaffSlots is the union of GenerateSlots over every staff member assigned to service.
func (e *Engine) AnyStaffSlots(ctx context.Context, service *domain.Service, date time.Time) ([]types.TimeString, error) {
	staffIDs, err := e.staff.GetStaffIDsForService(ctx, service.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: staff for service_id=%d: %w", ErrRead, service.ID, err)
	}

	seen := make(map[types.TimeString]struct{})
	for _, staffID := range staffIDs {
		slots, err := e.GenerateSlots(ctx, service, staffID, date)
		if err != nil {
			return nil, err
		}
		for _, s := range slots {
			seen[s] = struct{}{}
		}
	}

	return sortedTimes(seen), nil
}

// AvailableDays returns the days of [start, end] on which at least one of
// staffIDs has a free slot. The staff loop stops at the first hit for a day.
// An empty staffIDs means every staff member assigned to service.
func (e *Engine) AvailableDays(ctx context.Context, service *domain.Service, staffIDs []int64, start, end time.Time) ([]time.Time, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start.Format(domain.DateFormat), end.Format(domain.DateFormat))
	}
	if service.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: service_id=%d duration=%d", ErrInvalidDuration, service.ID, service.DurationMinutes)
	}

	if len(staffIDs) == 0 {
		ids, err := e.staff.GetStaffIDsForService(ctx, service.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: staff for service_id=%d: %w", ErrRead, service.ID, err)
		}
		staffIDs = ids
	}

	days := make([]time.Time, 0)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, staffID := range staffIDs {
			slots, err := e.GenerateSlots(ctx, service, staffID, day)
			if err != nil {
				return nil, err
			}
			if len(slots) > 0 {
				days = append(days, day)
				break
			}
		}
	}

	return days, nil
}
