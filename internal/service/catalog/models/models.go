package models

import "github.com/ciphersage74/elegancecoiffure/internal/domain"

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Category        *string `json:"category,omitempty"`
	ImageURL        *string `json:"image_url,omitempty"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

// StaffResponse мастер, выполняющий услугу
type StaffResponse struct {
	ID              int64   `json:"id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Position        *string `json:"position,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	Specialties     *string `json:"specialties,omitempty"`
	PhotoURL        *string `json:"photo_url,omitempty"`
	YearsExperience int     `json:"years_experience"`
}

type StaffListResponse struct {
	ServiceID int64           `json:"service_id"`
	Staff     []StaffResponse `json:"staff"`
}

func FromDomainServices(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			Category:        s.Category,
			ImageURL:        s.ImageURL,
		})
	}
	return resp
}

// FromDomainStaff оставляет только активных мастеров
func FromDomainStaff(serviceID int64, staff []*domain.Staff) *StaffListResponse {
	resp := &StaffListResponse{ServiceID: serviceID, Staff: make([]StaffResponse, 0, len(staff))}
	for _, s := range staff {
		if !s.IsActive {
			continue
		}
		resp.Staff = append(resp.Staff, StaffResponse{
			ID:              s.ID,
			FirstName:       s.FirstName,
			LastName:        s.LastName,
			Position:        s.Position,
			Bio:             s.Bio,
			Specialties:     s.Specialties,
			PhotoURL:        s.PhotoURL,
			YearsExperience: s.YearsExperience,
		})
	}
	return resp
}
