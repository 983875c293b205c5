package get_available_slots

import (
	"time"

	"github.com/ciphersage74/elegancecoiffure/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги
	StaffID   int64     // ID мастера, 0 - любой мастер
	Date      time.Time // Дата (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date      time.Time
	ServiceID int64
	StaffID   int64
	Slots     []types.TimeString // Начала свободных слотов по возрастанию
}
