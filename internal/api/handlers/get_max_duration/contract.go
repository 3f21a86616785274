package get_max_duration

import (
	"context"

	getMaxDuration "github.com/m04kA/KaraBox-BookingService/internal/usecase/get_max_duration"
)

type GetMaxDurationUseCase interface {
	Execute(ctx context.Context, req *getMaxDuration.Request) (*getMaxDuration.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
