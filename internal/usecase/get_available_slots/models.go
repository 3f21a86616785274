package get_available_slots

import (
	"time"

	"github.com/m04kA/KaraBox-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date       time.Time          // Дата, на которую запрашивались слоты
	Slots      []types.TimeString // Свободные слоты в порядке возрастания
	IsTestMode bool               // Включен ли тестовый режим
}
