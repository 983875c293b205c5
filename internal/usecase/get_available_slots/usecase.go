package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/ciphersage74/elegancecoiffure/internal/availability"
	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	catalogRepo "github.com/ciphersage74/elegancecoiffure/internal/infra/storage/catalog"
	"github.com/ciphersage74/elegancecoiffure/pkg/types"
)

// UseCase use case для получения доступных слотов
type UseCase struct {
	catalogRepo  CatalogRepository
	engine       AvailabilityEngine
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	engine AvailabilityEngine,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:  catalogRepo,
		engine:       engine,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, staff=%d, date=%s",
		req.ServiceID, req.StaffID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Считаем слоты: конкретный мастер или объединение по всем мастерам услуги
	var slots []types.TimeString
	if req.StaffID == 0 {
		slots, err = uc.engine.AnyStaffSlots(ctx, service, req.Date)
	} else {
		staff, err := uc.catalogRepo.GetStaff(ctx, req.StaffID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrStaffNotFound) {
				uc.logger.Warn("GetAvailableSlots: staff id=%d not found", req.StaffID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get staff id=%d: %v", req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		if err := validateStaff(staff, req.ServiceID); err != nil {
			uc.logger.Warn("GetAvailableSlots: staff id=%d rejected for service=%d: %v", req.StaffID, req.ServiceID, err)
			return nil, err
		}
		slots, err = uc.engine.GenerateSlots(ctx, service, req.StaffID, req.Date)
	}
	if err != nil {
		uc.logger.Error("GetAvailableSlots: engine error for service=%d, staff=%d: %v", req.ServiceID, req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	// 4. Убираем уже прошедшее время
	slots = availability.Upcoming(slots, req.Date, uc.timeProvider.Now())

	uc.logger.Info("GetAvailableSlots: %d slots for service=%d, staff=%d, date=%s",
		len(slots), req.ServiceID, req.StaffID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		Slots:     slots,
	}, nil
}
