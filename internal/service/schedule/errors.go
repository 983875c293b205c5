package schedule

import "errors"

var (
	// ErrStaffNotFound мастер не найден
	ErrStaffNotFound = errors.New("staff not found")

	// ErrUnavailabilityNotFound период недоступности не найден
	ErrUnavailabilityNotFound = errors.New("unavailability not found")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service: internal error")
)
