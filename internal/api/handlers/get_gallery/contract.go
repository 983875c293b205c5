package get_gallery

import (
	"context"

	"github.com/ciphersage74/elegancecoiffure/internal/service/salon/models"
)

type SalonService interface {
	GetGallery(ctx context.Context) (*models.GalleryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
