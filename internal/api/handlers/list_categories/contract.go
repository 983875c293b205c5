package list_categories

import (
	"context"

	"github.com/ciphersage74/elegancecoiffure/internal/service/catalog/models"
)

type CatalogService interface {
	ListCategories(ctx context.Context) (*models.CategoryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
