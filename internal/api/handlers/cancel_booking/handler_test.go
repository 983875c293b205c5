package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/ciphersage74/elegancecoiffure/internal/api/middleware"
	"github.com/ciphersage74/elegancecoiffure/internal/service/bookings"
	"github.com/ciphersage74/elegancecoiffure/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	caller models.Caller
	err    error
}

func (f *fakeService) Cancel(_ context.Context, id int64, caller models.Caller) (*models.BookingResponse, error) {
	f.caller = caller
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: id, Status: "cancelled"}, nil
}

func serve(svc BookingService, path, role string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Handle("/bookings/{bookingId}/cancel", middleware.Auth(http.HandlerFunc(NewHandler(svc, nopLogger{}).Handle))).
		Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, nil)
	req.Header.Set(middleware.HeaderUserID, "7")
	if role != "" {
		req.Header.Set(middleware.HeaderUserRole, role)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_PassesCaller(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "/bookings/5/cancel", middleware.RoleAdmin)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.Caller{UserID: 7, IsAdmin: true}, svc.caller)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{"bad id", "/bookings/abc/cancel", nil, http.StatusBadRequest},
		{"not found", "/bookings/5/cancel", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"not owner", "/bookings/5/cancel", bookings.ErrAccessDenied, http.StatusForbidden},
		{"already cancelled", "/bookings/5/cancel", bookings.ErrCannotCancel, http.StatusBadRequest},
		{"internal", "/bookings/5/cancel", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.path, "")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
