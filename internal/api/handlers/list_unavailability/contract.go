package list_unavailability

import (
	"context"

	"github.com/ciphersage74/elegancecoiffure/internal/service/schedule/models"
)

type ScheduleService interface {
	ListUnavailability(ctx context.Context, staffID int64, from string) (*models.UnavailabilityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
