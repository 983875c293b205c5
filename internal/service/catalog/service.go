package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ciphersage74/elegancecoiffure/internal/infra/cache"
	catalogRepo "github.com/ciphersage74/elegancecoiffure/internal/infra/storage/catalog"
	"github.com/ciphersage74/elegancecoiffure/internal/service/catalog/models"
)

const (
	KeyServices   = "catalog:services"
	KeyCategories = "catalog:categories"

	TTLServices   = 10 * time.Minute
	TTLCategories = time.Hour
)

// Service публичный каталог услуг
type Service struct {
	repo   CatalogRepository
	cache  Cache
	logger Logger
}

func NewService(repo CatalogRepository, c Cache, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  c,
		logger: logger,
	}
}

// ListServices активные услуги
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	resp, err := cache.GetOrLoad(ctx, s.cache, s.logger, KeyServices, TTLServices,
		func(ctx context.Context) (*models.ServiceListResponse, error) {
			services, err := s.repo.ListActiveServices(ctx)
			if err != nil {
				return nil, err
			}
			return models.FromDomainServices(services), nil
		})
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}
	return resp, nil
}

// ListCategories категории активных услуг
func (s *Service) ListCategories(ctx context.Context) (*models.CategoryListResponse, error) {
	resp, err := cache.GetOrLoad(ctx, s.cache, s.logger, KeyCategories, TTLCategories,
		func(ctx context.Context) (*models.CategoryListResponse, error) {
			categories, err := s.repo.ListCategories(ctx)
			if err != nil {
				return nil, err
			}
			return &models.CategoryListResponse{Categories: categories}, nil
		})
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}
	return resp, nil
}

// ListStaffForService активные мастера, назначенные на услугу. Не кешируется:
// состав мастеров меняется через админку без инвалидации.
func (s *Service) ListStaffForService(ctx context.Context, serviceID int64) (*models.StaffListResponse, error) {
	service, err := s.repo.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("ListStaffForService: service not found - service_id=%d", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("ListStaffForService: failed to get service_id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: ListStaffForService - get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		s.logger.Warn("ListStaffForService: service is inactive - service_id=%d", serviceID)
		return nil, ErrServiceNotFound
	}

	staff, err := s.repo.ListStaffForService(ctx, serviceID)
	if err != nil {
		s.logger.Error("ListStaffForService: failed to list staff for service_id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: ListStaffForService - list staff: %v", ErrInternal, err)
	}

	return models.FromDomainStaff(serviceID, staff), nil
}
