package salon

import "errors"

var (
	// ErrSalonInfoNotFound информация о салоне не заполнена
	ErrSalonInfoNotFound = errors.New("salon info not found")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service: internal error")
)
