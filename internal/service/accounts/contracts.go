package accounts

import (
	"context"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
)

// AccountRepository интерфейс репозитория аккаунтов
type AccountRepository interface {
	List(ctx context.Context) ([]*domain.Account, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
