package get_price_quote

// Request модель запроса на расчет стоимости
type Request struct {
	GroupSize     int // Количество гостей
	DurationHours int // Длительность в часах
}

// Response модель ответа с расчетом стоимости
type Response struct {
	BaseHourlyPrice float64 // Стоимость одного часа без скидки
	TotalPrice      float64 // Итоговая стоимость с учетом скидки
	DiscountAmount  float64 // Сумма скидки
	DiscountPercent int     // Процент скидки на дополнительные часы
}
