package domain

import (
	"time"

	"github.com/m04kA/KaraBox-BookingService/pkg/types"
)

// EffectiveWindow возвращает действующее окно бронирования
// В тестовом режиме окно расширено, чтобы проверки не упирались в настройки
func (s *BookingSettings) EffectiveWindow() BookingWindow {
	if s.IsTestMode {
		return BookingWindow{StartDays: 0, EndDays: TestModeWindowEndDays}
	}
	return s.BookingWindow
}

// IsDayExcluded проверяет, закрыт ли день для бронирования
// Настройки nil трактуются как полное отсутствие конфигурации:
// день считается закрытым, а не открытым
func IsDayExcluded(settings *BookingSettings, date, today time.Time) bool {
	if settings == nil {
		return true
	}

	// Тестовый режим игнорирует окно, расписание и исключенные даты
	if settings.IsTestMode {
		return false
	}

	window := settings.EffectiveWindow()
	day := truncateToDay(date)
	base := truncateToDay(today)

	if day.Before(base.AddDate(0, 0, window.StartDays)) {
		return true
	}
	if day.After(base.AddDate(0, 0, window.EndDays)) {
		return true
	}

	if !settings.HoursForDay(day).IsOpen {
		return true
	}

	return settings.IsDateExcluded(day)
}

// CandidateSlots возвращает полный список слотов на дату без учета занятости
func CandidateSlots(settings *BookingSettings, date time.Time) []types.TimeString {
	if settings == nil {
		return nil
	}
	if settings.IsTestMode {
		return append([]types.TimeString(nil), TestModeSlots...)
	}

	day := settings.HoursForDay(date)
	if !day.IsOpen {
		return nil
	}
	return append([]types.TimeString(nil), day.Slots...)
}

// AvailableSlots убирает из списка слоты, перекрытые активными бронированиями
// Слот занят, если попадает в полуинтервал [начало, начало+длительность)
// какого-либо бронирования
func AvailableSlots(candidates []types.TimeString, bookings []*Booking) []types.TimeString {
	available := make([]types.TimeString, 0, len(candidates))

	for _, slot := range candidates {
		hour := slot.Hour()
		if hour < 0 {
			continue
		}

		occupied := false
		for _, booking := range bookings {
			start := booking.TimeSlot.Hour()
			if start < 0 {
				continue
			}
			if hour >= start && hour < start+booking.DurationHours {
				occupied = true
				break
			}
		}

		if !occupied {
			available = append(available, slot)
		}
	}

	return available
}

// MaxDurationForSlot вычисляет максимальную длительность бронирования со старта slot
// Возвращает 0, если слот не входит в расписание дня.
// Длительность ограничена закрытием, бизнес-лимитом и началом
// ближайшего более позднего бронирования
func MaxDurationForSlot(candidates []types.TimeString, slot types.TimeString, bookings []*Booking) int {
	slotHour := slot.Hour()
	if slotHour < 0 {
		return 0
	}

	found := false
	lastHour := -1
	for _, candidate := range candidates {
		hour := candidate.Hour()
		if hour == slotHour {
			found = true
		}
		if hour > lastHour {
			lastHour = hour
		}
	}
	if !found {
		return 0
	}

	maxDuration := lastHour - slotHour + 1
	if maxDuration > MaxBookingDurationHours {
		maxDuration = MaxBookingDurationHours
	}

	for _, booking := range bookings {
		start := booking.TimeSlot.Hour()
		if start <= slotHour {
			continue
		}
		if gap := start - slotHour; gap < maxDuration {
			maxDuration = gap
		}
	}

	if maxDuration < 0 {
		return 0
	}
	return maxDuration
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
