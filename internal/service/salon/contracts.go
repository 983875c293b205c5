package salon

import (
	"context"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	"github.com/ciphersage74/elegancecoiffure/internal/infra/cache"
)

// SalonRepository данные салона
type SalonRepository interface {
	GetInfo(ctx context.Context) (*domain.SalonInfo, error)
	UpsertInfo(ctx context.Context, info *domain.SalonInfo) (*domain.SalonInfo, error)
	ListGallery(ctx context.Context) ([]*domain.GalleryImage, error)
	ListBusinessHours(ctx context.Context) ([]*domain.BusinessHours, error)
}

// Cache кеш справочных данных
type Cache = cache.Store

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
