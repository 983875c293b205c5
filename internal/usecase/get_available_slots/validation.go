package get_available_slots

import (
	"fmt"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.StaffID < 0 {
		return fmt.Errorf("%w: staffId must not be negative", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
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
