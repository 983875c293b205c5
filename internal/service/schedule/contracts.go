package schedule

import (
	"context"
	"time"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
)

// ScheduleRepository рабочие часы и недоступность мастеров
type ScheduleRepository interface {
	GetWorkingHours(ctx context.Context, staffID int64) ([]*domain.WorkingHoursWindow, error)
	ReplaceWorkingHours(ctx context.Context, staffID int64, windows []*domain.WorkingHoursWindow) error
	ListUnavailability(ctx context.Context, staffID int64, from *time.Time) ([]*domain.UnavailabilityPeriod, error)
	CreateUnavailability(ctx context.Context, p *domain.UnavailabilityPeriod) (*domain.UnavailabilityPeriod, error)
	DeleteUnavailability(ctx context.Context, id int64) error
}

// StaffRepository проверка существования мастера
type StaffRepository interface {
	GetStaff(ctx context.Context, id int64) (*domain.Staff, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
