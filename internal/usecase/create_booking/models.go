package create_booking

import (
	"time"

	"github.com/ciphersage74/elegancecoiffure/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID  int64            // ID клиента (из заголовков аутентификации)
	ServiceID int64            // ID услуги
	StaffID   int64            // ID мастера
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
	Notes     *string          // Заметки клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	ClientID  int64
	StaffID   int64
	ServiceID int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    string

	// Денормализованные данные
	ServiceName  string
	ServicePrice float64
	StaffName    string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
