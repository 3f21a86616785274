package models

import (
	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	"github.com/m04kA/KaraBox-BookingService/pkg/types"
)

// DayHoursPayload расписание одного дня недели
type DayHoursPayload struct {
	IsOpen bool               `json:"isOpen"`
	Slots  []types.TimeString `json:"slots"`
}

// BookingWindowPayload окно бронирования в днях от сегодняшнего
type BookingWindowPayload struct {
	StartDays int `json:"startDays"`
	EndDays   int `json:"endDays"`
}

// RatesPayload базовые тарифы
type RatesPayload struct {
	PerHour   float64 `json:"perHour"`
	PerPerson float64 `json:"perPerson"`
}

// SettingsResponse ответ с полными настройками бронирования
type SettingsResponse struct {
	OpeningHours  map[string]DayHoursPayload `json:"openingHours"`
	BookingWindow BookingWindowPayload       `json:"bookingWindow"`
	ExcludedDates []string                   `json:"excludedDates"`
	IsTestMode    bool                       `json:"isTestMode"`
	Rates         RatesPayload               `json:"rates"`
}

// UpdateSettingsRequest запрос на полную замену настроек
type UpdateSettingsRequest struct {
	OpeningHours  map[string]DayHoursPayload `json:"openingHours"`
	BookingWindow BookingWindowPayload       `json:"bookingWindow"`
	ExcludedDates []string                   `json:"excludedDates"`
	IsTestMode    bool                       `json:"isTestMode"`
	Rates         RatesPayload               `json:"rates"`
}

// ToDomainSettings конвертирует request в domain модель настроек
func (r *UpdateSettingsRequest) ToDomainSettings() *domain.BookingSettings {
	hours := make(map[string]domain.DayHours, len(r.OpeningHours))
	for day, payload := range r.OpeningHours {
		hours[day] = domain.DayHours{IsOpen: payload.IsOpen, Slots: payload.Slots}
	}
	excluded := r.ExcludedDates
	if excluded == nil {
		excluded = []string{}
	}
	return &domain.BookingSettings{
		OpeningHours: hours,
		BookingWindow: domain.BookingWindow{
			StartDays: r.BookingWindow.StartDays,
			EndDays:   r.BookingWindow.EndDays,
		},
		ExcludedDates: excluded,
		IsTestMode:    r.IsTestMode,
	}
}

// ToDomainRates конвертирует request в domain модель тарифов
func (r *UpdateSettingsRequest) ToDomainRates() *domain.BaseRates {
	return &domain.BaseRates{
		PerHour:   r.Rates.PerHour,
		PerPerson: r.Rates.PerPerson,
	}
}

// FromDomain собирает response из domain моделей
func FromDomain(settings *domain.BookingSettings, rates *domain.BaseRates) *SettingsResponse {
	hours := make(map[string]DayHoursPayload, len(settings.OpeningHours))
	for day, dayHours := range settings.OpeningHours {
		hours[day] = DayHoursPayload{IsOpen: dayHours.IsOpen, Slots: dayHours.Slots}
	}
	excluded := settings.ExcludedDates
	if excluded == nil {
		excluded = []string{}
	}
	return &SettingsResponse{
		OpeningHours: hours,
		BookingWindow: BookingWindowPayload{
			StartDays: settings.BookingWindow.StartDays,
			EndDays:   settings.BookingWindow.EndDays,
		},
		ExcludedDates: excluded,
		IsTestMode:    settings.IsTestMode,
		Rates: RatesPayload{
			PerHour:   rates.PerHour,
			PerPerson: rates.PerPerson,
		},
	}
}
