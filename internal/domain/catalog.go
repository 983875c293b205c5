package domain

import "time"

// Service is a bookable salon service
type Service struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64
	Category        *string
	ImageURL        *string
	IsActive        bool
}

// Duration returns the service length
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// Staff is a salon employee who performs services
type Staff struct {
	ID              int64
	UserID          int64
	FirstName       string
	LastName        string
	Position        *string
	Bio             *string
	Specialties     *string
	PhotoURL        *string
	YearsExperience int
	IsActive        bool
	ServiceIDs      []int64
}

// FullName returns "First Last"
func (s *Staff) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// CanPerform returns true if the staff member is assigned to the service
func (s *Staff) CanPerform(serviceID int64) bool {
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
