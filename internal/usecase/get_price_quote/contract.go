package get_price_quote

import (
	"context"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetBaseRates(ctx context.Context) (*domain.BaseRates, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
