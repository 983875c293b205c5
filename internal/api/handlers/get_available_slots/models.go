package get_available_slots

import (
	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	getAvailableSlots "github.com/ciphersage74/elegancecoiffure/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string   `json:"date"`
	ServiceID int64    `json:"service_id"`
	StaffID   int64    `json:"staff_id"`
	Slots     []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		ServiceID: resp.ServiceID,
		StaffID:   resp.StaffID,
		Slots:     slots,
	}
}
