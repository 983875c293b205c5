package replace_working_hours

import "github.com/ciphersage74/elegancecoiffure/internal/service/schedule/models"

// ReplaceWorkingHoursRequest тело запроса: полный недельный набор окон
type ReplaceWorkingHoursRequest struct {
	Hours []models.WorkingHoursDTO `json:"hours"`
}

func (r *ReplaceWorkingHoursRequest) ToServiceRequest(staffID int64) *models.ReplaceWorkingHoursRequest {
	return &models.ReplaceWorkingHoursRequest{
		StaffID: staffID,
		Hours:   r.Hours,
	}
}
