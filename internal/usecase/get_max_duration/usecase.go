package get_max_duration

import (
	"context"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
)

// UseCase use case для расчета максимальной длительности бронирования
// со стартового слота. Фронтенд ограничивает этим значением выбор
// длительности в форме бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, settingsRepo SettingsRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case расчета максимальной длительности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMaxDuration: date=%s, slot=%s", req.Date.Format(domain.DateFormat), req.Slot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMaxDuration: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем настройки бронирования
	settings, err := uc.settingsRepo.GetBookingSettings(ctx)
	if err != nil {
		uc.logger.Warn("GetMaxDuration: failed to get settings, slot treated as unavailable: %v", err)
		settings = nil
	}

	// 4. Закрытый день дает нулевую длительность
	if domain.IsDayExcluded(settings, req.Date, now) {
		uc.logger.Info("GetMaxDuration: day %s is excluded", req.Date.Format(domain.DateFormat))
		return &Response{MaxDuration: 0}, nil
	}

	// 5. Тестовый режим: занятость не учитывается, всегда максимум
	if settings != nil && settings.IsTestMode {
		uc.logger.Info("GetMaxDuration: test mode, returning max for slot=%s", req.Slot)
		return &Response{MaxDuration: domain.MaxBookingDurationHours}, nil
	}

	// 6. Полный список слотов дня
	candidates := domain.CandidateSlots(settings, req.Date)

	// 7. Активные бронирования на дату
	// Ошибка чтения не блокирует расчет: длительность ограничивается
	// только расписанием, пересечения отсеет создание бронирования
	bookings, err := uc.bookingRepo.GetActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetMaxDuration: failed to get bookings, ignoring occupancy: %v", err)
		bookings = nil
	}

	// 8. Считаем максимум часов со стартового слота
	maxDuration := domain.MaxDurationForSlot(candidates, req.Slot, bookings)

	uc.logger.Info("GetMaxDuration: date=%s, slot=%s, max=%d",
		req.Date.Format(domain.DateFormat), req.Slot, maxDuration)

	return &Response{MaxDuration: maxDuration}, nil
}
