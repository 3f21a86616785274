package get_excluded_days

import "time"

// Request модель запроса на получение закрытых дней в диапазоне дат
type Request struct {
	StartDate time.Time // Начало диапазона (включительно)
	EndDate   time.Time // Конец диапазона (включительно)
}

// Response модель ответа со списком закрытых дней
type Response struct {
	// Days закрытые для бронирования даты в формате YYYY-MM-DD
	Days []string
}
