package catalog

import (
	"context"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	"github.com/ciphersage74/elegancecoiffure/internal/infra/cache"
)

// CatalogRepository услуги и мастера
type CatalogRepository interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	ListActiveServices(ctx context.Context) ([]*domain.Service, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListStaffForService(ctx context.Context, serviceID int64) ([]*domain.Staff, error)
}

// Cache кеш справочных данных
type Cache = cache.Store

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
