package update_booking_status

// UpdateStatusRequest тело запроса смены статуса
type UpdateStatusRequest struct {
	Status string `json:"status"` // pending, confirmed, completed, cancelled
}
