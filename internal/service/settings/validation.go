package settings

import (
	"fmt"
	"time"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	"github.com/m04kA/KaraBox-BookingService/internal/service/settings/models"
)

// validDayKeys допустимые ключи дней недели: "0" (воскресенье) .. "6" (суббота)
var validDayKeys = map[string]bool{
	"0": true, "1": true, "2": true, "3": true, "4": true, "5": true, "6": true,
}

// validateRequest валидирует запрос на обновление настроек
func validateRequest(req *models.UpdateSettingsRequest) error {
	if len(req.OpeningHours) == 0 {
		return fmt.Errorf("%w: openingHours are required", ErrInvalidInput)
	}

	for day, hours := range req.OpeningHours {
		if !validDayKeys[day] {
			return fmt.Errorf("%w: invalid day key %q, expected \"0\"..\"6\"", ErrInvalidInput, day)
		}
		if err := validateDaySlots(day, hours); err != nil {
			return err
		}
	}

	if req.BookingWindow.StartDays < 0 {
		return fmt.Errorf("%w: bookingWindow.startDays must not be negative", ErrInvalidInput)
	}
	if req.BookingWindow.EndDays <= req.BookingWindow.StartDays {
		return fmt.Errorf("%w: bookingWindow.endDays must be greater than startDays", ErrInvalidInput)
	}

	for _, date := range req.ExcludedDates {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			return fmt.Errorf("%w: invalid excluded date %q, expected YYYY-MM-DD", ErrInvalidInput, date)
		}
	}

	if req.Rates.PerHour <= 0 {
		return fmt.Errorf("%w: rates.perHour must be positive", ErrInvalidInput)
	}
	if req.Rates.PerPerson < 0 {
		return fmt.Errorf("%w: rates.perPerson must not be negative", ErrInvalidInput)
	}

	return nil
}

// validateDaySlots проверяет слоты одного дня
// Слоты открытого дня идут строго по возрастанию с шагом в один час:
// на этом держится вся арифметика длительностей
func validateDaySlots(day string, hours models.DayHoursPayload) error {
	if !hours.IsOpen {
		return nil
	}

	if len(hours.Slots) == 0 {
		return fmt.Errorf("%w: open day %q must have slots", ErrInvalidInput, day)
	}

	prevHour := -1
	for _, slot := range hours.Slots {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("%w: day %q: invalid slot %q", ErrInvalidInput, day, slot)
		}

		minutes, err := slot.Minutes()
		if err != nil || minutes%60 != 0 {
			return fmt.Errorf("%w: day %q: slot %q must start on the hour", ErrInvalidInput, day, slot)
		}

		hour := slot.Hour()
		if prevHour >= 0 && hour != prevHour+1 {
			return fmt.Errorf("%w: day %q: slots must be consecutive hours", ErrInvalidInput, day)
		}
		prevHour = hour
	}

	return nil
}
