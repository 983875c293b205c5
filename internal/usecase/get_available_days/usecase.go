package get_available_days

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ciphersage74/elegancecoiffure/internal/availability"
	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	catalogRepo "github.com/ciphersage74/elegancecoiffure/internal/infra/storage/catalog"
	"github.com/ciphersage74/elegancecoiffure/pkg/types"
)

// UseCase use case для поиска дней с доступными слотами
type UseCase struct {
	catalogRepo  CatalogRepository
	engine       AvailabilityEngine
	maxRangeDays int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. maxRangeDays <= 0 заменяется значением по умолчанию.
func NewUseCase(
	catalogRepo CatalogRepository,
	engine AvailabilityEngine,
	maxRangeDays int,
	logger Logger,
) *UseCase {
	if maxRangeDays <= 0 {
		maxRangeDays = domain.DefaultMaxRangeDays
	}
	return &UseCase{
		catalogRepo:  catalogRepo,
		engine:       engine,
		maxRangeDays: maxRangeDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDays: service=%d, staff=%d, range=%s..%s",
		req.ServiceID, req.StaffID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxRangeDays); err != nil {
		uc.logger.Warn("GetAvailableDays: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableDays: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableDays: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("GetAvailableDays: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Конкретный мастер или все мастера услуги
	var staffIDs []int64
	if req.StaffID > 0 {
		if _, err := uc.catalogRepo.GetStaff(ctx, req.StaffID); err != nil {
			if errors.Is(err, catalogRepo.ErrStaffNotFound) {
				uc.logger.Warn("GetAvailableDays: staff id=%d not found", req.StaffID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("GetAvailableDays: failed to get staff id=%d: %v", req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		staffIDs = []int64{req.StaffID}
	}

	resp := &Response{
		ServiceID:     req.ServiceID,
		StaffID:       req.StaffID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		AvailableDays: []time.Time{},
	}

	// 4. Прошедшие дни не проверяем
	now := uc.timeProvider.Now()
	start := clampStart(req.StartDate, now)
	if start.After(req.EndDate) {
		return resp, nil
	}

	days := make([]time.Time, 0)

	// 5. Сегодня доступно, только если остался хотя бы один еще не начавшийся слот
	if isSameDay(start, now) {
		open, err := uc.hasUpcomingSlots(ctx, service, req.StaffID, start, now)
		if err != nil {
			uc.logger.Error("GetAvailableDays: engine error for service=%d, today: %v", req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to compute today: %v", ErrInternal, err)
		}
		if open {
			days = append(days, start)
		}
		start = start.AddDate(0, 0, 1)
	}

	if !start.After(req.EndDate) {
		rest, err := uc.engine.AvailableDays(ctx, service, staffIDs, start, req.EndDate)
		if err != nil {
			uc.logger.Error("GetAvailableDays: engine error for service=%d: %v", req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to compute days: %v", ErrInternal, err)
		}
		days = append(days, rest...)
	}

	resp.AvailableDays = days

	uc.logger.Info("GetAvailableDays: %d available days for service=%d, staff=%d",
		len(days), req.ServiceID, req.StaffID)

	return resp, nil
}

// hasUpcomingSlots проверяет, что на date остался слот, начинающийся позже now
func (uc *UseCase) hasUpcomingSlots(ctx context.Context, service *domain.Service, staffID int64, date, now time.Time) (bool, error) {
	var (
		slots []types.TimeString
		err   error
	)
	if staffID > 0 {
		slots, err = uc.engine.GenerateSlots(ctx, service, staffID, date)
	} else {
		slots, err = uc.engine.AnyStaffSlots(ctx, service, date)
	}
	if err != nil {
		return false, err
	}
	return len(availability.Upcoming(slots, date, now)) > 0, nil
}
