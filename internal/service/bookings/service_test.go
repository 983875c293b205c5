package bookings

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	bookingRepo "github.com/ciphersage74/elegancecoiffure/internal/infra/storage/booking"
	"github.com/ciphersage74/elegancecoiffure/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	bookings   map[int64]*domain.Booking
	lastFilter domain.BookingsFilter
	updateErr  error
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) GetByClientID(_ context.Context, clientID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.ClientID == clientID && (status == nil || b.Status == *status) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return nil, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func newTestService() (*Service, *fakeRepo) {
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, ClientID: 10, StaffID: 1, Date: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
			StartTime: "10:00", EndTime: "10:45", Status: domain.StatusConfirmed, ServiceName: "Coupe femme"},
		2: {ID: 2, ClientID: 10, StaffID: 1, Date: time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC),
			StartTime: "09:00", EndTime: "09:30", Status: domain.StatusCompleted},
	}}
	return NewService(repo, nopLogger{}), repo
}

func TestGetByID_Access(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.GetByID(ctx, 1, models.Caller{UserID: 10})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-03", resp.Date)
	assert.Equal(t, "10:45", resp.EndTime)

	_, err = svc.GetByID(ctx, 1, models.Caller{UserID: 11})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(ctx, 1, models.Caller{UserID: 99, IsAdmin: true})
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, 404, models.Caller{UserID: 10})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Cancel(ctx, 1, models.Caller{UserID: 11})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.Cancel(ctx, 1, models.Caller{UserID: 10})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)

	_, err = svc.Cancel(ctx, 1, models.Caller{UserID: 10})
	assert.ErrorIs(t, err, ErrCannotCancel)

	_, err = svc.Cancel(ctx, 2, models.Caller{UserID: 1, IsAdmin: true})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, 1, "no_show")
	assert.ErrorIs(t, err, ErrInvalidInput)

	resp, err := svc.UpdateStatus(ctx, 1, "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)

	repo.updateErr = fmt.Errorf("%w: UpdateStatus: bookings_no_overlap", bookingRepo.ErrSlotNotAvailable)
	_, err = svc.UpdateStatus(ctx, 2, "pending")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGetClientBookings(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.GetClientBookings(ctx, &models.GetClientBookingsRequest{Caller: models.Caller{UserID: 10}, ClientID: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	status := "completed"
	resp, err = svc.GetClientBookings(ctx, &models.GetClientBookingsRequest{Caller: models.Caller{UserID: 10}, ClientID: 10, Status: &status})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = svc.GetClientBookings(ctx, &models.GetClientBookingsRequest{Caller: models.Caller{UserID: 11}, ClientID: 10})
	assert.ErrorIs(t, err, ErrAccessDenied)

	bad := "lost"
	_, err = svc.GetClientBookings(ctx, &models.GetClientBookingsRequest{Caller: models.Caller{UserID: 10}, ClientID: 10, Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetAdminBookings_Filter(t *testing.T) {
	svc, repo := newTestService()

	staffID := int64(2)
	status := "pending"
	resp, err := svc.GetAdminBookings(context.Background(), &models.GetAdminBookingsRequest{StaffID: &staffID, Status: &status})
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Equal(t, &staffID, repo.lastFilter.StaffID)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusPending, *repo.lastFilter.Status)
}
