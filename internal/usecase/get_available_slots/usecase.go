package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	"github.com/m04kA/KaraBox-BookingService/pkg/types"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	cache        AvailabilityCache
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// cache может быть nil, тогда доступность считается на каждый запрос
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	cache AvailabilityCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		cache:        cache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем настройки бронирования
	// Ошибка чтения настроек закрывает день: лучше не показать свободные
	// слоты, чем показать слоты закрытого дня
	settings, err := uc.settingsRepo.GetBookingSettings(ctx)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: failed to get settings, day treated as closed: %v", err)
		settings = nil
	}

	// 4. Проверяем, открыт ли день
	if domain.IsDayExcluded(settings, req.Date, now) {
		uc.logger.Info("GetAvailableSlots: day %s is excluded", req.Date.Format(domain.DateFormat))
		return uc.response(req.Date, []types.TimeString{}, settings), nil
	}

	// 5. Тестовый режим: фиксированный список слотов без учета занятости
	// и без кэша, реальные ограничения в песочнице не действуют
	if settings != nil && settings.IsTestMode {
		uc.logger.Info("GetAvailableSlots: test mode, returning fixed slots for %s",
			req.Date.Format(domain.DateFormat))
		return uc.response(req.Date, domain.TestModeSlots, settings), nil
	}

	// 6. Пробуем кэш
	if uc.cache != nil {
		if slots, err := uc.cache.GetSlots(ctx, req.Date); err == nil {
			uc.logger.Info("GetAvailableSlots: cache hit for %s, %d slots",
				req.Date.Format(domain.DateFormat), len(slots))
			return uc.response(req.Date, slots, settings), nil
		}
	}

	// 7. Полный список слотов дня
	candidates := domain.CandidateSlots(settings, req.Date)

	// 8. Активные бронирования на дату
	// Ошибка чтения бронирований не блокирует выдачу: возвращаем полный
	// список, авторитетная проверка пересечений происходит при создании
	bookings, err := uc.bookingRepo.GetActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings, returning unfiltered slots: %v", err)
		return uc.response(req.Date, candidates, settings), nil
	}

	// 9. Убираем занятые слоты
	available := domain.AvailableSlots(candidates, bookings)

	// 10. Кэшируем результат (best effort)
	if uc.cache != nil {
		if err := uc.cache.SetSlots(ctx, req.Date, available); err != nil {
			uc.logger.Warn("GetAvailableSlots: failed to cache slots: %v", err)
		}
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available on %s",
		len(available), len(candidates), req.Date.Format(domain.DateFormat))

	return uc.response(req.Date, available, settings), nil
}

func (uc *UseCase) response(date time.Time, slots []types.TimeString, settings *domain.BookingSettings) *Response {
	isTestMode := settings != nil && settings.IsTestMode
	return &Response{
		Date:       date,
		Slots:      slots,
		IsTestMode: isTestMode,
	}
}
