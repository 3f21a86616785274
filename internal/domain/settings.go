package domain

import (
	"time"

	"github.com/m04kA/KaraBox-BookingService/pkg/types"
)

// DayHours расписание работы на один день недели
type DayHours struct {
	IsOpen bool               `json:"isOpen"`
	Slots  []types.TimeString `json:"slots"` // Почасовые слоты в порядке возрастания ("14:00", "15:00", ...)
}

// BookingWindow окно бронирования относительно сегодняшнего дня
// Бронировать можно не раньше чем через StartDays и не позже чем через EndDays дней
type BookingWindow struct {
	StartDays int `json:"startDays"`
	EndDays   int `json:"endDays"`
}

// BookingSettings настройки бронирования
// Хранятся в settings store под ключом KeyBookingSettings
// Ключи OpeningHours: "0".."6", где 0 = воскресенье (как в JS getDay())
type BookingSettings struct {
	OpeningHours  map[string]DayHours `json:"openingHours"`
	BookingWindow BookingWindow       `json:"bookingWindow"`
	ExcludedDates []string            `json:"excludedDates"` // Даты "YYYY-MM-DD" (праздники, ручные исключения)
	IsTestMode    bool                `json:"isTestMode"`
}

// BaseRates базовые тарифы, хранятся под ключом KeyBasePrice
type BaseRates struct {
	PerHour   float64 `json:"perHour"`
	PerPerson float64 `json:"perPerson"`
}

// HoursForDay возвращает расписание на день недели указанной даты
// Если день не настроен - считается закрытым
func (s *BookingSettings) HoursForDay(date time.Time) DayHours {
	day, ok := s.OpeningHours[weekdayKey(date)]
	if !ok {
		return DayHours{IsOpen: false}
	}
	return day
}

// IsDateExcluded проверяет, входит ли дата в список исключенных дней
func (s *BookingSettings) IsDateExcluded(date time.Time) bool {
	key := date.Format(DateFormat)
	for _, excluded := range s.ExcludedDates {
		if excluded == key {
			return true
		}
	}
	return false
}

// weekdayKey возвращает ключ дня недели в нотации исходных настроек (0 = воскресенье)
func weekdayKey(date time.Time) string {
	switch date.Weekday() {
	case time.Sunday:
		return "0"
	case time.Monday:
		return "1"
	case time.Tuesday:
		return "2"
	case time.Wednesday:
		return "3"
	case time.Thursday:
		return "4"
	case time.Friday:
		return "5"
	case time.Saturday:
		return "6"
	default:
		return ""
	}
}
