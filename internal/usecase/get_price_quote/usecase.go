package get_price_quote

import (
	"context"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
)

// UseCase use case расчета стоимости бронирования
type UseCase struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(settingsRepo SettingsRepository, logger Logger) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Execute выполняет use case расчета стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetPriceQuote: groupSize=%d, duration=%d", req.GroupSize, req.DurationHours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetPriceQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем тарифы
	// Отсутствие настроенных тарифов не блокирует расчет: действуют дефолтные
	rates, err := uc.settingsRepo.GetBaseRates(ctx)
	if err != nil {
		uc.logger.Warn("GetPriceQuote: failed to get rates, using defaults: %v", err)
		rates = &domain.BaseRates{
			PerHour:   domain.DefaultPerHourRate,
			PerPerson: domain.DefaultPerPersonRate,
		}
	}

	// 3. Считаем стоимость
	quote, err := domain.CalculateQuote(req.GroupSize, req.DurationHours, *rates)
	if err != nil {
		uc.logger.Error("GetPriceQuote: calculation failed: %v", err)
		return nil, ErrInvalidInput
	}

	uc.logger.Info("GetPriceQuote: groupSize=%d, duration=%d, total=%.2f",
		req.GroupSize, req.DurationHours, quote.TotalPrice)

	return &Response{
		BaseHourlyPrice: quote.BaseHourlyPrice,
		TotalPrice:      quote.TotalPrice,
		DiscountAmount:  quote.DiscountAmount,
		DiscountPercent: quote.DiscountPercent,
	}, nil
}
