package settings

import (
	"context"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetBookingSettings(ctx context.Context) (*domain.BookingSettings, error)
	UpsertBookingSettings(ctx context.Context, settings *domain.BookingSettings) error
	GetBaseRates(ctx context.Context) (*domain.BaseRates, error)
	UpsertBaseRates(ctx context.Context, rates *domain.BaseRates) error
}

// AvailabilityCache интерфейс кэша доступных слотов
type AvailabilityCache interface {
	InvalidateAll(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
