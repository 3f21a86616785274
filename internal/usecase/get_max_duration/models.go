package get_max_duration

import (
	"time"

	"github.com/m04kA/KaraBox-BookingService/pkg/types"
)

// Request модель запроса на расчет максимальной длительности
type Request struct {
	Date time.Time        // Дата бронирования
	Slot types.TimeString // Стартовый слот (например, "14:00")
}

// Response модель ответа с максимальной длительностью
type Response struct {
	// MaxDuration максимум часов, доступных со стартового слота
	// 0 означает, что слот недоступен для бронирования
	MaxDuration int
}
