package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или отключена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrStaffNotFound возвращается, когда мастер не найден или не работает
	ErrStaffNotFound = errors.New("create_booking: staff not found")

	// ErrStaffNotQualified возвращается, когда мастер не выполняет эту услугу
	ErrStaffNotQualified = errors.New("create_booking: staff does not perform this service")

	// ErrBookingInPast возвращается, когда время начала уже прошло
	ErrBookingInPast = errors.New("create_booking: start time is in the past")

	// ErrOutsideWorkingHours возвращается, когда интервал не помещается в рабочее окно
	// мастера или пересекает период недоступности
	ErrOutsideWorkingHours = errors.New("create_booking: outside staff working hours")

	// ErrConflict возвращается, когда интервал пересекается с активным бронированием
	ErrConflict = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
