package schedule

import "errors"

var (
	// ErrUnavailabilityNotFound период недоступности не найден
	ErrUnavailabilityNotFound = errors.New("schedule.repository: unavailability not found")

	// ErrStaffNotFound нарушение внешнего ключа на мастера
	ErrStaffNotFound = errors.New("schedule.repository: staff not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
