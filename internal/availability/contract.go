package availability

import (
	"context"
	"time"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
)

// WorkingHoursReader returns the working windows of a staff member for a weekday (Monday=0).
type WorkingHoursReader interface {
	GetByStaffAndDay(ctx context.Context, staffID int64, dayOfWeek int) ([]*domain.WorkingHoursWindow, error)
}

// UnavailabilityReader returns the unavailability periods of a staff member for a date.
type UnavailabilityReader interface {
	GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time) ([]*domain.UnavailabilityPeriod, error)
}

// BookingReader returns pending and confirmed bookings of a staff member for a date.
// Inside a transaction the implementation is expected to lock the rows it returns.
type BookingReader interface {
	GetActiveByStaffAndDate(ctx context.Context, staffID int64, date time.Time) ([]*domain.Booking, error)
}

// StaffReader returns the IDs of active staff members assigned to a service.
type StaffReader interface {
	GetStaffIDsForService(ctx context.Context, serviceID int64) ([]int64, error)
}
