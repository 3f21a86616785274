package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	"github.com/m04kA/KaraBox-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetActiveByDate получает активные бронирования на дату
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetBookingSettings(ctx context.Context) (*domain.BookingSettings, error)
}

// AvailabilityCache интерфейс кэша доступных слотов
type AvailabilityCache interface {
	GetSlots(ctx context.Context, date time.Time) ([]types.TimeString, error)
	SetSlots(ctx context.Context, date time.Time, slots []types.TimeString) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
