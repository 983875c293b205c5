package get_available_days

import (
	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	getAvailableDays "github.com/ciphersage74/elegancecoiffure/internal/usecase/get_available_days"
)

// AvailableDaysResponse HTTP response model
type AvailableDaysResponse struct {
	ServiceID     int64    `json:"service_id"`
	StaffID       int64    `json:"staff_id"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	AvailableDays []string `json:"available_days"`
}

func FromUseCaseResponse(resp *getAvailableDays.Response) *AvailableDaysResponse {
	days := make([]string, len(resp.AvailableDays))
	for i, d := range resp.AvailableDays {
		days[i] = d.Format(domain.DateFormat)
	}

	return &AvailableDaysResponse{
		ServiceID:     resp.ServiceID,
		StaffID:       resp.StaffID,
		StartDate:     resp.StartDate.Format(domain.DateFormat),
		EndDate:       resp.EndDate.Format(domain.DateFormat),
		AvailableDays: days,
	}
}
