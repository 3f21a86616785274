package domain

import "github.com/m04kA/KaraBox-BookingService/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business rule constants
const (
	// MaxBookingDurationHours бизнес-ограничение на длительность одного бронирования
	// Действует независимо от количества свободных слотов до закрытия
	MaxBookingDurationHours = 4

	// AdditionalHourDiscountRate скидка на каждый час после первого
	AdditionalHourDiscountRate = 0.10

	// MinGroupSize / MaxGroupSize ограничения на размер группы
	MinGroupSize = 1
	MaxGroupSize = 15

	// MaxMessageLength максимальная длина комментария к бронированию
	MaxMessageLength = 500
)

// Default booking window values
const (
	DefaultWindowStartDays = 1
	DefaultWindowEndDays   = 30

	// TestModeWindowEndDays окно бронирования в тестовом режиме
	TestModeWindowEndDays = 365
)

// Payment constants
const (
	// PromoCodeFree промокод полной скидки: бронирование подтверждается
	// без обращения к платежному провайдеру
	PromoCodeFree = "TEST2024"

	// DefaultCurrency валюта платежей
	DefaultCurrency = "usd"
)

// Settings store keys
const (
	KeyBookingSettings = "booking_settings"
	KeyBasePrice       = "base_price"
)

// Default base rates, используются когда тарифы не настроены
const (
	DefaultPerHourRate   = 30.0
	DefaultPerPersonRate = 5.0
)

// TestModeSlots фиксированный список слотов для тестового режима
// Возвращается вместо вычисленного списка, чтобы проверки не зависели от настроек
var TestModeSlots = []types.TimeString{
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00", "21:00", "22:00",
}
