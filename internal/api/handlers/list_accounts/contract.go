package list_accounts

import (
	"context"

	"github.com/m04kA/KaraBox-BookingService/internal/service/accounts/models"
)

// AccountService интерфейс сервиса аккаунтов
type AccountService interface {
	List(ctx context.Context) (*models.AccountListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
