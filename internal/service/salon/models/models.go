package models

import (
	"errors"
	"strings"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
)

// ErrInvalidSalonInfo некорректные данные салона
var ErrInvalidSalonInfo = errors.New("invalid salon info")

// SalonInfoResponse профиль салона
type SalonInfoResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        *string `json:"description,omitempty"`
	Address            *string `json:"address,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	Email              *string `json:"email,omitempty"`
	LogoURL            *string `json:"logo_url,omitempty"`
	CancellationPolicy *string `json:"cancellation_policy,omitempty"`
}

// UpdateSalonInfoRequest запрос на обновление профиля
type UpdateSalonInfoRequest struct {
	Name               string  `json:"name"`
	Description        *string `json:"description,omitempty"`
	Address            *string `json:"address,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	Email              *string `json:"email,omitempty"`
	LogoURL            *string `json:"logo_url,omitempty"`
	CancellationPolicy *string `json:"cancellation_policy,omitempty"`
}

// ToDomain валидирует запрос
func (r *UpdateSalonInfoRequest) ToDomain() (*domain.SalonInfo, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, ErrInvalidSalonInfo
	}
	return &domain.SalonInfo{
		Name:               name,
		Description:        r.Description,
		Address:            r.Address,
		Phone:              r.Phone,
		Email:              r.Email,
		LogoURL:            r.LogoURL,
		CancellationPolicy: r.CancellationPolicy,
	}, nil
}

// GalleryImageResponse изображение галереи
type GalleryImageResponse struct {
	ID           int64   `json:"id"`
	ImageURL     string  `json:"image_url"`
	Title        *string `json:"title,omitempty"`
	DisplayOrder int     `json:"display_order"`
}

// GalleryResponse галерея
type GalleryResponse struct {
	Images []GalleryImageResponse `json:"images"`
}

// BusinessHoursResponse часы работы на день недели (0=понедельник)
type BusinessHoursResponse struct {
	DayOfWeek int     `json:"day_of_week"`
	OpenTime  *string `json:"open_time,omitempty"`
	CloseTime *string `json:"close_time,omitempty"`
	IsClosed  bool    `json:"is_closed"`
}

// BusinessHoursListResponse часы работы за неделю
type BusinessHoursListResponse struct {
	Hours []BusinessHoursResponse `json:"hours"`
}

func FromDomainInfo(info *domain.SalonInfo) *SalonInfoResponse {
	return &SalonInfoResponse{
		ID:                 info.ID,
		Name:               info.Name,
		Description:        info.Description,
		Address:            info.Address,
		Phone:              info.Phone,
		Email:              info.Email,
		LogoURL:            info.LogoURL,
		CancellationPolicy: info.CancellationPolicy,
	}
}

func FromDomainGallery(images []*domain.GalleryImage) *GalleryResponse {
	resp := &GalleryResponse{Images: make([]GalleryImageResponse, 0, len(images))}
	for _, img := range images {
		resp.Images = append(resp.Images, GalleryImageResponse{
			ID:           img.ID,
			ImageURL:     img.ImageURL,
			Title:        img.Title,
			DisplayOrder: img.DisplayOrder,
		})
	}
	return resp
}

func FromDomainBusinessHours(hours []*domain.BusinessHours) *BusinessHoursListResponse {
	resp := &BusinessHoursListResponse{Hours: make([]BusinessHoursResponse, 0, len(hours))}
	for _, h := range hours {
		item := BusinessHoursResponse{DayOfWeek: h.DayOfWeek, IsClosed: h.IsClosed}
		if h.OpenTime != nil {
			s := h.OpenTime.String()
			item.OpenTime = &s
		}
		if h.CloseTime != nil {
			s := h.CloseTime.String()
			item.CloseTime = &s
		}
		resp.Hours = append(resp.Hours, item)
	}
	return resp
}
