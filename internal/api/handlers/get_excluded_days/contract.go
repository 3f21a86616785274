package get_excluded_days

import (
	"context"

	getExcludedDays "github.com/m04kA/KaraBox-BookingService/internal/usecase/get_excluded_days"
)

type GetExcludedDaysUseCase interface {
	Execute(ctx context.Context, req *getExcludedDays.Request) (*getExcludedDays.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
