package get_available_days

import "time"

// Request модель запроса дней с доступными слотами
type Request struct {
	ServiceID int64     // ID услуги
	StaffID   int64     // ID мастера, 0 - все мастера услуги
	StartDate time.Time // Начало периода (включительно)
	EndDate   time.Time // Конец периода (включительно)
}

// Response дни, на которые есть хотя бы один свободный слот
type Response struct {
	ServiceID     int64
	StaffID       int64
	StartDate     time.Time
	EndDate       time.Time
	AvailableDays []time.Time
}
