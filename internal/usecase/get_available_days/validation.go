package get_available_days

import (
	"fmt"
	"time"
)

// validateRequest проверяет идентификаторы и границы периода
func validateRequest(req *Request, maxRangeDays int) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.StaffID < 0 {
		return fmt.Errorf("%w: staffId must not be negative", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	// Длина периода в днях, обе границы включительно
	days := int(req.EndDate.Sub(req.StartDate).Hours()/24) + 1
	if days > maxRangeDays {
		return fmt.Errorf("%w: %d days requested, at most %d allowed", ErrRangeTooLong, days, maxRangeDays)
	}

	return nil
}

// clampStart переносит начало периода на сегодня, если оно в прошлом
func clampStart(start, now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, start.Location())
	if start.Before(today) {
		return today
	}
	return start
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
