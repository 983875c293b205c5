package get_business_hours

import (
	"context"

	"github.com/ciphersage74/elegancecoiffure/internal/service/salon/models"
)

type SalonService interface {
	GetBusinessHours(ctx context.Context) (*models.BusinessHoursListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
