package get_salon_info

import (
	"context"

	"github.com/ciphersage74/elegancecoiffure/internal/service/salon/models"
)

type SalonService interface {
	GetInfo(ctx context.Context) (*models.SalonInfoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
