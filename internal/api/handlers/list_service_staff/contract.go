package list_service_staff

import (
	"context"

	"github.com/ciphersage74/elegancecoiffure/internal/service/catalog/models"
)

type CatalogService interface {
	ListStaffForService(ctx context.Context, serviceID int64) (*models.StaffListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
