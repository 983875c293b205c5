package salon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ciphersage74/elegancecoiffure/internal/infra/cache"
	salonRepo "github.com/ciphersage74/elegancecoiffure/internal/infra/storage/salon"
	"github.com/ciphersage74/elegancecoiffure/internal/service/salon/models"
)

// Ключи и время жизни кеша
const (
	KeySalonInfo     = "salon:info"
	KeyGallery       = "salon:gallery"
	KeyBusinessHours = "salon:hours"

	TTLSalonInfo     = time.Hour
	TTLGallery       = 10 * time.Minute
	TTLBusinessHours = time.Hour
)

// Service публичная информация о салоне с кешированием
type Service struct {
	repo   SalonRepository
	cache  Cache
	logger Logger
}

func NewService(repo SalonRepository, c Cache, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  c,
		logger: logger,
	}
}

// GetInfo профиль салона
func (s *Service) GetInfo(ctx context.Context) (*models.SalonInfoResponse, error) {
	resp, err := cache.GetOrLoad(ctx, s.cache, s.logger, KeySalonInfo, TTLSalonInfo,
		func(ctx context.Context) (*models.SalonInfoResponse, error) {
			info, err := s.repo.GetInfo(ctx)
			if err != nil {
				return nil, err
			}
			return models.FromDomainInfo(info), nil
		})
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonInfoNotFound) {
			s.logger.Warn("GetInfo: salon info not configured")
			return nil, ErrSalonInfoNotFound
		}
		s.logger.Error("GetInfo: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetInfo - repository error: %v", ErrInternal, err)
	}
	return resp, nil
}

// GetGallery изображения галереи
func (s *Service) GetGallery(ctx context.Context) (*models.GalleryResponse, error) {
	resp, err := cache.GetOrLoad(ctx, s.cache, s.logger, KeyGallery, TTLGallery,
		func(ctx context.Context) (*models.GalleryResponse, error) {
			images, err := s.repo.ListGallery(ctx)
			if err != nil {
				return nil, err
			}
			return models.FromDomainGallery(images), nil
		})
	if err != nil {
		s.logger.Error("GetGallery: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetGallery - repository error: %v", ErrInternal, err)
	}
	return resp, nil
}

// GetBusinessHours часы работы салона
func (s *Service) GetBusinessHours(ctx context.Context) (*models.BusinessHoursListResponse, error) {
	resp, err := cache.GetOrLoad(ctx, s.cache, s.logger, KeyBusinessHours, TTLBusinessHours,
		func(ctx context.Context) (*models.BusinessHoursListResponse, error) {
			hours, err := s.repo.ListBusinessHours(ctx)
			if err != nil {
				return nil, err
			}
			return models.FromDomainBusinessHours(hours), nil
		})
	if err != nil {
		s.logger.Error("GetBusinessHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBusinessHours - repository error: %v", ErrInternal, err)
	}
	return resp, nil
}

// UpdateInfo сохраняет профиль и сбрасывает только его ключ кеша
func (s *Service) UpdateInfo(ctx context.Context, req *models.UpdateSalonInfoRequest) (*models.SalonInfoResponse, error) {
	info, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("UpdateInfo: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.repo.UpsertInfo(ctx, info)
	if err != nil {
		s.logger.Error("UpdateInfo: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateInfo - repository error: %v", ErrInternal, err)
	}

	if err := s.cache.Delete(ctx, KeySalonInfo); err != nil {
		s.logger.Warn("UpdateInfo: cache invalidation failed for %s: %v", KeySalonInfo, err)
	}

	s.logger.Info("UpdateInfo: salon info id=%d updated", saved.ID)
	return models.FromDomainInfo(saved), nil
}
