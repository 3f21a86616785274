package domain

import (
	"errors"
	"math"
)

// ErrInvalidQuoteInput возвращается при неположительном размере группы или длительности
// Вызывающая сторона в этом случае не должна показывать цену вообще
var ErrInvalidQuoteInput = errors.New("domain: group size and duration must be positive")

// PriceQuote расчет стоимости бронирования
// Эфемерный объект: пересчитывается при каждом изменении входных данных, не хранится
type PriceQuote struct {
	BaseHourlyPrice float64 // Цена первого часа (perHour + groupSize*perPerson)
	TotalPrice      float64 // Итоговая цена, округленная до целой единицы валюты
	DiscountAmount  float64 // Сэкономленная сумма, округленная
	DiscountPercent int     // 10 при длительности > 1 часа, иначе 0
}

// CalculateQuote вычисляет стоимость бронирования
// Первый час - полная цена, каждый следующий со скидкой 10%.
// Округление выполняется один раз на итоговых суммах, а не по часам,
// чтобы не накапливать ошибку округления.
func CalculateQuote(groupSize, durationHours int, rates BaseRates) (*PriceQuote, error) {
	if groupSize <= 0 || durationHours <= 0 {
		return nil, ErrInvalidQuoteInput
	}

	baseHourly := rates.PerHour + float64(groupSize)*rates.PerPerson

	total := baseHourly
	discount := 0.0
	discountPercent := 0

	if durationHours > 1 {
		additionalHours := float64(durationHours - 1)
		total += baseHourly * (1 - AdditionalHourDiscountRate) * additionalHours
		discount = baseHourly * AdditionalHourDiscountRate * additionalHours
		discountPercent = int(AdditionalHourDiscountRate * 100)
	}

	return &PriceQuote{
		BaseHourlyPrice: baseHourly,
		TotalPrice:      math.Round(total),
		DiscountAmount:  math.Round(discount),
		DiscountPercent: discountPercent,
	}, nil
}
