package create_booking

import (
	"context"
	"time"

	"github.com/ciphersage74/elegancecoiffure/internal/availability"
	"github.com/ciphersage74/elegancecoiffure/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория услуг и мастеров
type CatalogRepository interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetStaff(ctx context.Context, id int64) (*domain.Staff, error)
}

// ConflictChecker проверки движка доступности для предлагаемого интервала
type ConflictChecker interface {
	HasConflict(ctx context.Context, staffID int64, date time.Time, proposed availability.Interval) (bool, error)
	FitsWorkingHours(ctx context.Context, staffID int64, date time.Time, proposed availability.Interval) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// BookingMetrics счетчик исходов создания бронирования
type BookingMetrics interface {
	ObserveBooking(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
