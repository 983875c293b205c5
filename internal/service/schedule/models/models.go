package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	"github.com/ciphersage74/elegancecoiffure/pkg/types"
)

var (
	// ErrInvalidWindow некорректное рабочее окно
	ErrInvalidWindow = errors.New("invalid working hours window")

	// ErrInvalidPeriod некорректный период недоступности
	ErrInvalidPeriod = errors.New("invalid unavailability period")
)

// WorkingHoursDTO одно рабочее окно; day_of_week 0=понедельник
type WorkingHoursDTO struct {
	ID        int64  `json:"id,omitempty"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// WorkingHoursResponse недельное расписание мастера
type WorkingHoursResponse struct {
	StaffID int64             `json:"staff_id"`
	Hours   []WorkingHoursDTO `json:"hours"`
}

// ReplaceWorkingHoursRequest полная замена расписания
type ReplaceWorkingHoursRequest struct {
	StaffID int64
	Hours   []WorkingHoursDTO
}

// ToDomain валидирует окна и конвертирует их
func (r *ReplaceWorkingHoursRequest) ToDomain() ([]*domain.WorkingHoursWindow, error) {
	windows := make([]*domain.WorkingHoursWindow, 0, len(r.Hours))

	for i, h := range r.Hours {
		start, err := types.NewTimeStringFromString(h.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: hours[%d].start_time: %v", ErrInvalidWindow, i, err)
		}
		end, err := types.NewTimeStringFromString(h.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: hours[%d].end_time: %v", ErrInvalidWindow, i, err)
		}

		w := &domain.WorkingHoursWindow{
			StaffID:   r.StaffID,
			DayOfWeek: h.DayOfWeek,
			StartTime: start,
			EndTime:   end,
		}
		if !w.IsValid() {
			return nil, fmt.Errorf("%w: hours[%d] day=%d %s-%s", ErrInvalidWindow, i, h.DayOfWeek, start, end)
		}

		windows = append(windows, w)
	}

	return windows, nil
}

// UnavailabilityDTO период недоступности. Пустые start_time/end_time - весь день.
type UnavailabilityDTO struct {
	ID          int64   `json:"id,omitempty"`
	StaffID     int64   `json:"staff_id"`
	Date        string  `json:"date"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	IsAvailable bool    `json:"is_available"`
	Reason      *string `json:"reason,omitempty"`
	WholeDay    bool    `json:"whole_day"`
}

// UnavailabilityListResponse список периодов
type UnavailabilityListResponse struct {
	Periods []UnavailabilityDTO `json:"periods"`
}

// CreateUnavailabilityRequest запрос на добавление периода
type CreateUnavailabilityRequest struct {
	StaffID     int64
	Date        string
	StartTime   *string
	EndTime     *string
	IsAvailable bool
	Reason      *string
}

// ToDomain валидирует и конвертирует запрос
func (r *CreateUnavailabilityRequest) ToDomain() (*domain.UnavailabilityPeriod, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidPeriod, err)
	}

	p := &domain.UnavailabilityPeriod{
		StaffID:     r.StaffID,
		Date:        date,
		IsAvailable: r.IsAvailable,
		Reason:      r.Reason,
	}

	if r.Reason != nil && len(*r.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason longer than %d", ErrInvalidPeriod, domain.MaxReasonLength)
	}

	if r.StartTime != nil && *r.StartTime != "" {
		start, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: start_time: %v", ErrInvalidPeriod, err)
		}
		p.StartTime = &start
	}
	if r.EndTime != nil && *r.EndTime != "" {
		end, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: end_time: %v", ErrInvalidPeriod, err)
		}
		p.EndTime = &end
	}

	if (p.StartTime == nil) != (p.EndTime == nil) {
		return nil, fmt.Errorf("%w: start_time and end_time must be set together", ErrInvalidPeriod)
	}

	if !p.IsWholeDay() && !p.StartTime.IsBefore(*p.EndTime) {
		return nil, fmt.Errorf("%w: start_time must be before end_time", ErrInvalidPeriod)
	}

	return p, nil
}

// FromDomainHours конвертирует окна в ответ
func FromDomainHours(staffID int64, windows []*domain.WorkingHoursWindow) *WorkingHoursResponse {
	resp := &WorkingHoursResponse{
		StaffID: staffID,
		Hours:   make([]WorkingHoursDTO, 0, len(windows)),
	}
	for _, w := range windows {
		resp.Hours = append(resp.Hours, WorkingHoursDTO{
			ID:        w.ID,
			DayOfWeek: w.DayOfWeek,
			StartTime: w.StartTime.String(),
			EndTime:   w.EndTime.String(),
		})
	}
	return resp
}

// FromDomainPeriod конвертирует период в DTO
func FromDomainPeriod(p *domain.UnavailabilityPeriod) UnavailabilityDTO {
	dto := UnavailabilityDTO{
		ID:          p.ID,
		StaffID:     p.StaffID,
		Date:        p.Date.Format(domain.DateFormat),
		IsAvailable: p.IsAvailable,
		Reason:      p.Reason,
		WholeDay:    p.IsWholeDay(),
	}
	if p.StartTime != nil {
		s := p.StartTime.String()
		dto.StartTime = &s
	}
	if p.EndTime != nil {
		e := p.EndTime.String()
		dto.EndTime = &e
	}
	return dto
}

// ParseFrom разбирает необязательный параметр from (YYYY-MM-DD)
func ParseFrom(from string) (*time.Time, error) {
	if from == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(from)
	if err != nil {
		return nil, fmt.Errorf("%w: from: %v", ErrInvalidPeriod, err)
	}
	return &d, nil
}
