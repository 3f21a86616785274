package get_excluded_days

import (
	"context"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
)

// UseCase use case для получения закрытых дней в диапазоне дат
// Используется фронтендом для затемнения недоступных дат в календаре
type UseCase struct {
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(settingsRepo SettingsRepository, logger Logger) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения закрытых дней
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetExcludedDays: range=%s..%s",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetExcludedDays: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем настройки бронирования
	// При ошибке чтения все дни диапазона считаются закрытыми
	settings, err := uc.settingsRepo.GetBookingSettings(ctx)
	if err != nil {
		uc.logger.Warn("GetExcludedDays: failed to get settings, all days treated as closed: %v", err)
		settings = nil
	}

	// 4. Проверяем каждый день диапазона
	days := make([]string, 0)
	for date := req.StartDate; !date.After(req.EndDate); date = date.AddDate(0, 0, 1) {
		if domain.IsDayExcluded(settings, date, now) {
			days = append(days, date.Format(domain.DateFormat))
		}
	}

	uc.logger.Info("GetExcludedDays: %d excluded days in range %s..%s",
		len(days), req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	return &Response{Days: days}, nil
}
