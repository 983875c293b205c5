package create_booking

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/ciphersage74/elegancecoiffure/internal/availability"
	"github.com/ciphersage74/elegancecoiffure/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	// "Любой мастер" допустим только при поиске слотов
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateStaff проверяет, что мастер работает и выполняет услугу
func validateStaff(staff *domain.Staff, serviceID int64) error {
	if !staff.IsActive {
		return ErrStaffNotFound
	}
	if !staff.CanPerform(serviceID) {
		return ErrStaffNotQualified
	}
	return nil
}

// validateNotInPast запрещает бронирование на уже начавшееся время
func validateNotInPast(proposed availability.Interval, now time.Time) error {
	wallNow := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, proposed.Start.Location())
	if proposed.Start.Before(wallNow) {
		return ErrBookingInPast
	}
	return nil
}
