package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciphersage74/elegancecoiffure/internal/availability"
	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	bookingRepo "github.com/ciphersage74/elegancecoiffure/internal/infra/storage/booking"
	catalogRepo "github.com/ciphersage74/elegancecoiffure/internal/infra/storage/catalog"
	"github.com/ciphersage74/elegancecoiffure/pkg/metrics"
	"github.com/ciphersage74/elegancecoiffure/pkg/txmanager"
	"github.com/ciphersage74/elegancecoiffure/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type recordingMetrics struct{ outcomes []string }

func (m *recordingMetrics) ObserveBooking(outcome string) { m.outcomes = append(m.outcomes, outcome) }

// store реализует читателей движка и репозитории usecase в памяти
type store struct {
	windows   []*domain.WorkingHoursWindow
	periods   []*domain.UnavailabilityPeriod
	bookings  []*domain.Booking
	createErr error
	nextID    int64
}

func (s *store) GetByStaffAndDay(_ context.Context, staffID int64, day int) ([]*domain.WorkingHoursWindow, error) {
	var out []*domain.WorkingHoursWindow
	for _, w := range s.windows {
		if w.StaffID == staffID && w.DayOfWeek == day {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *store) GetByStaffAndDate(_ context.Context, staffID int64, date time.Time) ([]*domain.UnavailabilityPeriod, error) {
	var out []*domain.UnavailabilityPeriod
	for _, p := range s.periods {
		if p.StaffID == staffID && p.Date.Equal(date) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *store) GetActiveByStaffAndDate(_ context.Context, staffID int64, date time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range s.bookings {
		if b.StaffID == staffID && b.Date.Equal(date) && b.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *store) GetStaffIDsForService(context.Context, int64) ([]int64, error) {
	return []int64{1}, nil
}

func (s *store) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.nextID++
	b.ID = s.nextID
	s.bookings = append(s.bookings, b)
	return b, nil
}

func (s *store) GetService(_ context.Context, id int64) (*domain.Service, error) {
	switch id {
	case 1:
		return &domain.Service{ID: 1, Name: "Coupe femme", DurationMinutes: 45, Price: 35, IsActive: true}, nil
	case 2:
		return &domain.Service{ID: 2, Name: "Coloration", DurationMinutes: 90, Price: 60, IsActive: true}, nil
	case 3:
		return &domain.Service{ID: 3, Name: "Archivée", DurationMinutes: 30, IsActive: false}, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (s *store) GetStaff(_ context.Context, id int64) (*domain.Staff, error) {
	switch id {
	case 1:
		return &domain.Staff{ID: 1, FirstName: "Claire", LastName: "Martin", IsActive: true, ServiceIDs: []int64{1, 3}}, nil
	case 2:
		return &domain.Staff{ID: 2, FirstName: "Hugo", IsActive: false, ServiceIDs: []int64{1}}, nil
	}
	return nil, catalogRepo.ErrStaffNotFound
}

type directTx struct {
	calls int
	err   error
}

func (d *directTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	d.calls++
	if d.err != nil {
		return d.err
	}
	return fn(ctx)
}

// 2 июня 2025 - понедельник
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func newFixture() (*UseCase, *store, *directTx, *recordingMetrics) {
	s := &store{
		windows: []*domain.WorkingHoursWindow{
			{StaffID: 1, DayOfWeek: 0, StartTime: "09:00", EndTime: "12:00"},
			{StaffID: 1, DayOfWeek: 0, StartTime: "14:00", EndTime: "18:00"},
		},
		bookings: []*domain.Booking{
			{ID: 100, StaffID: 1, Date: monday, StartTime: "10:00", EndTime: "10:45", Status: domain.StatusConfirmed},
		},
		nextID: 100,
	}
	engine := availability.NewEngine(s, s, s, s)
	tx := &directTx{}
	m := &recordingMetrics{}
	uc := NewUseCase(s, s, engine, tx, m, nopLogger{}).
		WithTimeProvider(fixedTime{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)})
	return uc, s, tx, m
}

func request(start types.TimeString) *Request {
	return &Request{ClientID: 10, ServiceID: 1, StaffID: 1, Date: monday, StartTime: start}
}

func TestExecute_BackToBackSucceeds(t *testing.T) {
	uc, s, tx, m := newFixture()

	resp, err := uc.Execute(context.Background(), request("10:45"))
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, types.TimeString("11:30"), resp.EndTime)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Coupe femme", resp.ServiceName)
	assert.Equal(t, 35.0, resp.ServicePrice)
	assert.Equal(t, "Claire Martin", resp.StaffName)
	assert.Len(t, s.bookings, 2)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []string{metrics.OutcomeCreated}, m.outcomes)
}

func TestExecute_OneMinuteOverlapConflicts(t *testing.T) {
	uc, s, _, m := newFixture()

	_, err := uc.Execute(context.Background(), request("10:44"))
	assert.ErrorIs(t, err, ErrConflict)
	assert.Len(t, s.bookings, 1)
	assert.Equal(t, []string{metrics.OutcomeConflict}, m.outcomes)
}

func TestExecute_EndingAtExistingStartSucceeds(t *testing.T) {
	uc, _, _, _ := newFixture()

	_, err := uc.Execute(context.Background(), request("09:15"))
	assert.NoError(t, err)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	uc, s, _, _ := newFixture()
	s.bookings[0].Status = domain.StatusCancelled

	_, err := uc.Execute(context.Background(), request("10:15"))
	assert.NoError(t, err)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	tests := []struct {
		name  string
		start types.TimeString
	}{
		{"before opening", "08:30"},
		{"spans the lunch break", "11:30"},
		{"runs past closing", "17:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _, m := newFixture()

			_, err := uc.Execute(context.Background(), request(tt.start))
			assert.ErrorIs(t, err, ErrOutsideWorkingHours)
			assert.Equal(t, []string{metrics.OutcomeRejected}, m.outcomes)
		})
	}
}

func TestExecute_UnavailabilityBlocks(t *testing.T) {
	uc, s, _, _ := newFixture()
	from := types.MustTimeString("15:00")
	to := types.MustTimeString("16:00")
	s.periods = []*domain.UnavailabilityPeriod{{StaffID: 1, Date: monday, StartTime: &from, EndTime: &to}}

	_, err := uc.Execute(context.Background(), request("15:30"))
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)

	_, err = uc.Execute(context.Background(), request("16:00"))
	assert.NoError(t, err)

	s.periods = []*domain.UnavailabilityPeriod{{StaffID: 1, Date: monday}}
	_, err = uc.Execute(context.Background(), request("09:00"))
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_RejectedBeforeTransaction(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"any staff is not bookable", Request{ClientID: 10, ServiceID: 1, Date: monday, StartTime: "09:00"}, ErrInvalidInput},
		{"missing client", Request{ServiceID: 1, StaffID: 1, Date: monday, StartTime: "09:00"}, ErrInvalidInput},
		{"bad time", Request{ClientID: 10, ServiceID: 1, StaffID: 1, Date: monday, StartTime: "9h"}, ErrInvalidInput},
		{"unknown service", Request{ClientID: 10, ServiceID: 9, StaffID: 1, Date: monday, StartTime: "09:00"}, ErrServiceNotFound},
		{"inactive service", Request{ClientID: 10, ServiceID: 3, StaffID: 1, Date: monday, StartTime: "09:00"}, ErrServiceNotFound},
		{"unknown staff", Request{ClientID: 10, ServiceID: 1, StaffID: 9, Date: monday, StartTime: "09:00"}, ErrStaffNotFound},
		{"inactive staff", Request{ClientID: 10, ServiceID: 1, StaffID: 2, Date: monday, StartTime: "09:00"}, ErrStaffNotFound},
		{"not qualified", Request{ClientID: 10, ServiceID: 2, StaffID: 1, Date: monday, StartTime: "09:00"}, ErrStaffNotQualified},
		{"in the past", Request{ClientID: 10, ServiceID: 1, StaffID: 1, Date: monday.AddDate(0, 0, -7), StartTime: "09:00"}, ErrBookingInPast},
		{"crosses midnight", Request{ClientID: 10, ServiceID: 1, StaffID: 1, Date: monday, StartTime: "23:30"}, ErrOutsideWorkingHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, tx, _ := newFixture()
			req := tt.req

			_, err := uc.Execute(context.Background(), &req)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, tx.calls)
		})
	}
}

func TestExecute_NotesTooLong(t *testing.T) {
	uc, _, _, _ := newFixture()
	notes := string(make([]rune, domain.MaxNotesLength+1))
	req := request("09:00")
	req.Notes = &notes

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StorageErrorsMapped(t *testing.T) {
	tests := []struct {
		name      string
		createErr error
		txErr     error
		want      error
		outcome   string
	}{
		{
			name:      "exclusion constraint",
			createErr: fmt.Errorf("%w: Create: bookings_no_overlap", bookingRepo.ErrSlotNotAvailable),
			want:      ErrConflict,
			outcome:   metrics.OutcomeConflict,
		},
		{
			name:    "serializable retries exhausted",
			txErr:   fmt.Errorf("%w: after 3 attempts", txmanager.ErrRetriesExhausted),
			want:    ErrConflict,
			outcome: metrics.OutcomeConflict,
		},
		{
			name:      "unexpected failure",
			createErr: errors.New("connection reset"),
			want:      ErrInternal,
			outcome:   metrics.OutcomeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, s, tx, m := newFixture()
			s.createErr = tt.createErr
			tx.err = tt.txErr

			_, err := uc.Execute(context.Background(), request("14:00"))
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, []string{tt.outcome}, m.outcomes)
		})
	}
}
