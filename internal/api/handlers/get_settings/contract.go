package get_settings

import (
	"context"

	"github.com/m04kA/KaraBox-BookingService/internal/service/settings/models"
)

// SettingsService интерфейс сервиса настроек
type SettingsService interface {
	Get(ctx context.Context) (*models.SettingsResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
