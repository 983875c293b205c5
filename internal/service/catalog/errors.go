package catalog

import "errors"

var (
	// ErrServiceNotFound услуга не найдена или отключена
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service: internal error")
)
