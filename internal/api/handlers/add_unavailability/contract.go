package add_unavailability

import (
	"context"

	"github.com/ciphersage74/elegancecoiffure/internal/service/schedule/models"
)

type ScheduleService interface {
	AddUnavailability(ctx context.Context, req *models.CreateUnavailabilityRequest) (*models.UnavailabilityDTO, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
