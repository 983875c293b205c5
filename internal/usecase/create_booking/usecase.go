package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/ciphersage74/elegancecoiffure/internal/availability"
	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	bookingRepo "github.com/ciphersage74/elegancecoiffure/internal/infra/storage/booking"
	catalogRepo "github.com/ciphersage74/elegancecoiffure/internal/infra/storage/catalog"
	"github.com/ciphersage74/elegancecoiffure/pkg/metrics"
	"github.com/ciphersage74/elegancecoiffure/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	checker      ConflictChecker
	txManager    TransactionManager
	metrics      BookingMetrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	checker ConflictChecker,
	txManager TransactionManager,
	metrics BookingMetrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		checker:      checker,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования.
// Проверка конфликта и вставка выполняются в одной сериализуемой транзакции,
// исключающее ограничение bookings_no_overlap страхует от гонки на уровне БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, service=%d, staff=%d, date=%s, time=%s",
		req.ClientID, req.ServiceID, req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime)

	result, err := uc.execute(ctx, req)
	uc.metrics.ObserveBooking(outcomeOf(err))
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		ClientID:     result.ClientID,
		StaffID:      result.StaffID,
		ServiceID:    result.ServiceID,
		Date:         result.Date,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       string(result.Status),
		ServiceName:  result.ServiceName,
		ServicePrice: result.ServicePrice,
		StaffName:    result.StaffName,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}
	if service.DurationMinutes <= 0 {
		uc.logger.Error("CreateBooking: service id=%d has invalid duration %d", service.ID, service.DurationMinutes)
		return nil, fmt.Errorf("%w: service id=%d has invalid duration", ErrInternal, service.ID)
	}

	// 3. Получаем мастера и проверяем, что он выполняет услугу
	staff, err := uc.catalogRepo.GetStaff(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateBooking: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateBooking: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if err := validateStaff(staff, req.ServiceID); err != nil {
		uc.logger.Warn("CreateBooking: staff id=%d rejected for service id=%d: %v", req.StaffID, req.ServiceID, err)
		return nil, err
	}

	// 4. Интервал бронирования, конец фиксируется по длительности услуги
	endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: %s + %d min crosses midnight", req.StartTime, service.DurationMinutes)
		return nil, fmt.Errorf("%w: %v", ErrOutsideWorkingHours, err)
	}
	proposed := availability.IntervalOf(req.Date, req.StartTime, endTime)

	if err := validateNotInPast(proposed, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: %s %s is in the past", req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, err
	}

	var result *domain.Booking

	// 5. Проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Активные бронирования мастера на дату читаются с блокировкой (FOR UPDATE)
		conflict, err := uc.checker.HasConflict(txCtx, req.StaffID, req.Date, proposed)
		if err != nil {
			return fmt.Errorf("%w: conflict check: %w", ErrInternal, err)
		}
		if conflict {
			uc.logger.Warn("CreateBooking: staff=%d already booked at %s %s-%s",
				req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime, endTime)
			return ErrConflict
		}

		// 5.2. Рабочие окна и недоступность
		fits, err := uc.checker.FitsWorkingHours(txCtx, req.StaffID, req.Date, proposed)
		if err != nil {
			return fmt.Errorf("%w: working hours check: %w", ErrInternal, err)
		}
		if !fits {
			uc.logger.Warn("CreateBooking: %s-%s is outside working hours of staff=%d on %s",
				req.StartTime, endTime, req.StaffID, req.Date.Format(domain.DateFormat))
			return ErrOutsideWorkingHours
		}

		// 5.3. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			ClientID:     req.ClientID,
			StaffID:      req.StaffID,
			ServiceID:    req.ServiceID,
			Date:         req.Date,
			StartTime:    req.StartTime,
			EndTime:      endTime,
			Status:       domain.StatusPending,
			Notes:        req.Notes,
			ServiceName:  service.Name,
			ServicePrice: service.Price,
			StaffName:    staff.FullName(),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.mapTxError(req, err)
	}

	return result, nil
}

// mapTxError переводит ошибки транзакции в ошибки usecase
func (uc *UseCase) mapTxError(req *Request, err error) error {
	switch {
	case errors.Is(err, ErrConflict), errors.Is(err, ErrOutsideWorkingHours):
		return err
	case errors.Is(err, bookingRepo.ErrSlotNotAvailable):
		uc.logger.Warn("CreateBooking: overlap rejected by storage for staff=%d: %v", req.StaffID, err)
		return ErrConflict
	case errors.Is(err, txmanager.ErrRetriesExhausted):
		uc.logger.Warn("CreateBooking: concurrent writers for staff=%d, giving up: %v", req.StaffID, err)
		return ErrConflict
	case errors.Is(err, bookingRepo.ErrReferenceNotFound):
		uc.logger.Warn("CreateBooking: referenced row disappeared: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, ErrInternal):
		uc.logger.Error("CreateBooking: %v", err)
		return err
	default:
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}
}

// outcomeOf метка исхода для счетчика бронирований
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeCreated
	case errors.Is(err, ErrConflict):
		return metrics.OutcomeConflict
	case errors.Is(err, ErrInternal):
		return metrics.OutcomeFailed
	default:
		return metrics.OutcomeRejected
	}
}
