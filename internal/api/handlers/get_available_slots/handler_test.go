package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	getAvailableSlots "github.com/ciphersage74/elegancecoiffure/internal/usecase/get_available_slots"
	"github.com/ciphersage74/elegancecoiffure/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestHandle_ReturnsSlots(t *testing.T) {
	uc := &fakeUseCase{}
	uc.resp = &getAvailableSlots.Response{
		ServiceID: 3,
		Slots:     []types.TimeString{types.MustTimeString("09:00"), types.MustTimeString("09:15")},
	}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?serviceId=3&staffId=0&date=2025-06-02", nil)
	rec := httptest.NewRecorder()
	uc.resp.Date = mustDate(t, "2025-06-02")
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(0), uc.got.StaffID)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-06-02", body.Date)
	assert.Equal(t, []string{"09:00", "09:15"}, body.Slots)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		ucErr  error
		status int
	}{
		{"missing service", "/api/v1/availability?staffId=0&date=2025-06-02", nil, http.StatusBadRequest},
		{"missing staff", "/api/v1/availability?serviceId=1&date=2025-06-02", nil, http.StatusBadRequest},
		{"negative staff", "/api/v1/availability?serviceId=1&staffId=-1&date=2025-06-02", nil, http.StatusBadRequest},
		{"bad date", "/api/v1/availability?serviceId=1&staffId=0&date=02/06/2025", nil, http.StatusBadRequest},
		{"service not found", "/api/v1/availability?serviceId=1&staffId=0&date=2025-06-02", getAvailableSlots.ErrServiceNotFound, http.StatusNotFound},
		{"staff not found", "/api/v1/availability?serviceId=1&staffId=9&date=2025-06-02", getAvailableSlots.ErrStaffNotFound, http.StatusNotFound},
		{"staff not qualified", "/api/v1/availability?serviceId=1&staffId=4&date=2025-06-02", getAvailableSlots.ErrStaffNotQualified, http.StatusBadRequest},
		{"internal", "/api/v1/availability?serviceId=1&staffId=0&date=2025-06-02", getAvailableSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.ucErr}
			h := NewHandler(uc, nopLogger{})
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, tt.status, rec.Code)
			if tt.ucErr == nil {
				assert.Nil(t, uc.got, "request must be rejected before the use case")
			}
		})
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}
