package add_unavailability

import "github.com/ciphersage74/elegancecoiffure/internal/service/schedule/models"

// AddUnavailabilityRequest тело запроса. Без start_time/end_time период блокирует весь день.
type AddUnavailabilityRequest struct {
	Date        string  `json:"date"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	IsAvailable bool    `json:"is_available"`
	Reason      *string `json:"reason,omitempty"`
}

func (r *AddUnavailabilityRequest) ToServiceRequest(staffID int64) *models.CreateUnavailabilityRequest {
	return &models.CreateUnavailabilityRequest{
		StaffID:     staffID,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		IsAvailable: r.IsAvailable,
		Reason:      r.Reason,
	}
}
