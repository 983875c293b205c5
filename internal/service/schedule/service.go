package schedule

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/ciphersage74/elegancecoiffure/internal/infra/storage/catalog"
	scheduleRepo "github.com/ciphersage74/elegancecoiffure/internal/infra/storage/schedule"
	"github.com/ciphersage74/elegancecoiffure/internal/service/schedule/models"
)

// Service администрирование расписания мастеров
type Service struct {
	scheduleRepo ScheduleRepository
	staffRepo    StaffRepository
	txManager    TransactionManager
	logger       Logger
}

func NewService(
	scheduleRepo ScheduleRepository,
	staffRepo StaffRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		staffRepo:    staffRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetWorkingHours недельное расписание мастера
func (s *Service) GetWorkingHours(ctx context.Context, staffID int64) (*models.WorkingHoursResponse, error) {
	if err := s.ensureStaff(ctx, "GetWorkingHours", staffID); err != nil {
		return nil, err
	}

	windows, err := s.scheduleRepo.GetWorkingHours(ctx, staffID)
	if err != nil {
		s.logger.Error("GetWorkingHours: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetWorkingHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHours(staffID, windows), nil
}

// ReplaceWorkingHours заменяет расписание мастера целиком в одной транзакции
func (s *Service) ReplaceWorkingHours(ctx context.Context, req *models.ReplaceWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("ReplaceWorkingHours: staff=%d windows=%d", req.StaffID, len(req.Hours))

	windows, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("ReplaceWorkingHours: validation failed for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ensureStaff(ctx, "ReplaceWorkingHours", req.StaffID); err != nil {
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.scheduleRepo.ReplaceWorkingHours(ctx, req.StaffID, windows)
	})
	if err != nil {
		s.logger.Error("ReplaceWorkingHours: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: ReplaceWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceWorkingHours: staff=%d schedule replaced", req.StaffID)
	return models.FromDomainHours(req.StaffID, windows), nil
}

// ListUnavailability периоды недоступности мастера
func (s *Service) ListUnavailability(ctx context.Context, staffID int64, from string) (*models.UnavailabilityListResponse, error) {
	fromDate, err := models.ParseFrom(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ensureStaff(ctx, "ListUnavailability", staffID); err != nil {
		return nil, err
	}

	periods, err := s.scheduleRepo.ListUnavailability(ctx, staffID, fromDate)
	if err != nil {
		s.logger.Error("ListUnavailability: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: ListUnavailability - repository error: %v", ErrInternal, err)
	}

	resp := &models.UnavailabilityListResponse{Periods: make([]models.UnavailabilityDTO, 0, len(periods))}
	for _, p := range periods {
		resp.Periods = append(resp.Periods, models.FromDomainPeriod(p))
	}
	return resp, nil
}

// AddUnavailability добавляет период недоступности
func (s *Service) AddUnavailability(ctx context.Context, req *models.CreateUnavailabilityRequest) (*models.UnavailabilityDTO, error) {
	period, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("AddUnavailability: validation failed for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ensureStaff(ctx, "AddUnavailability", req.StaffID); err != nil {
		return nil, err
	}

	created, err := s.scheduleRepo.CreateUnavailability(ctx, period)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("AddUnavailability: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: AddUnavailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddUnavailability: staff=%d date=%s id=%d whole_day=%t",
		created.StaffID, req.Date, created.ID, created.IsWholeDay())

	dto := models.FromDomainPeriod(created)
	return &dto, nil
}

// DeleteUnavailability удаляет период недоступности
func (s *Service) DeleteUnavailability(ctx context.Context, id int64) error {
	if err := s.scheduleRepo.DeleteUnavailability(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrUnavailabilityNotFound) {
			s.logger.Warn("DeleteUnavailability: id=%d not found", id)
			return ErrUnavailabilityNotFound
		}
		s.logger.Error("DeleteUnavailability: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteUnavailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteUnavailability: id=%d deleted", id)
	return nil
}

func (s *Service) ensureStaff(ctx context.Context, op string, staffID int64) error {
	if _, err := s.staffRepo.GetStaff(ctx, staffID); err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			s.logger.Warn("%s: staff id=%d not found", op, staffID)
			return ErrStaffNotFound
		}
		s.logger.Error("%s: failed to get staff id=%d: %v", op, staffID, err)
		return fmt.Errorf("%w: %s - failed to get staff: %v", ErrInternal, op, err)
	}
	return nil
}
