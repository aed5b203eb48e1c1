package get_available_slots

import (
	"time"

	"github.com/Hayzedd-A/appointment-booking/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date           time.Time          // Дата, на которую запрашивались слоты
	AvailableSlots []types.TimeString // Свободные времена начала, по возрастанию
}
