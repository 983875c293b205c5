package get_available_days

import (
	"context"
	"time"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	"github.com/ciphersage74/elegancecoiffure/pkg/types"
)

// CatalogRepository интерфейс репозитория услуг и мастеров
type CatalogRepository interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetStaff(ctx context.Context, id int64) (*domain.Staff, error)
}

// AvailabilityEngine поиск дней со свободными слотами
type AvailabilityEngine interface {
	AvailableDays(ctx context.Context, service *domain.Service, staffIDs []int64, start, end time.Time) ([]time.Time, error)
	GenerateSlots(ctx context.Context, service *domain.Service, staffID int64, date time.Time) ([]types.TimeString, error)
	AnyStaffSlots(ctx context.Context, service *domain.Service, date time.Time) ([]types.TimeString, error)
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

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
