package create_checkout

import (
	"context"
	"fmt"
	"math"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	"github.com/m04kA/KaraBox-BookingService/internal/integrations/stripeclient"
)

// UseCase use case для создания бронирования с платежной сессией
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	accountRepo  AccountRepository
	payments     PaymentProvider
	mailer       Mailer
	cache        AvailabilityCache
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// cache может быть nil, тогда инвалидация пропускается
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	accountRepo AccountRepository,
	payments PaymentProvider,
	mailer Mailer,
	cache AvailabilityCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		accountRepo:  accountRepo,
		payments:     payments,
		mailer:       mailer,
		cache:        cache,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений выполняется в сериализуемой транзакции с блокировкой
// строк: выдача доступных слотов оптимистична, здесь решается окончательно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCheckout: email=%s, date=%s, slot=%s, duration=%d, group=%d",
		req.UserEmail, req.Date.Format(domain.DateFormat), req.TimeSlot, req.DurationHours, req.GroupSize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateCheckout: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем настройки бронирования
	// Без настроек бронирование невозможно: день считается закрытым
	settings, err := uc.settingsRepo.GetBookingSettings(ctx)
	if err != nil {
		uc.logger.Error("CreateCheckout: failed to get settings: %v", err)
		return nil, ErrDayNotAvailable
	}

	// 4. Проверяем, открыт ли день
	if domain.IsDayExcluded(settings, req.Date, now) {
		uc.logger.Warn("CreateCheckout: day %s is excluded", req.Date.Format(domain.DateFormat))
		return nil, ErrDayNotAvailable
	}

	// 5. Считаем стоимость на сервере
	// Цена клиента не принимается: пересчет защищает от подмены суммы
	rates, err := uc.settingsRepo.GetBaseRates(ctx)
	if err != nil {
		uc.logger.Warn("CreateCheckout: failed to get rates, using defaults: %v", err)
		rates = &domain.BaseRates{
			PerHour:   domain.DefaultPerHourRate,
			PerPerson: domain.DefaultPerPersonRate,
		}
	}

	quote, err := domain.CalculateQuote(req.GroupSize, req.DurationHours, *rates)
	if err != nil {
		uc.logger.Warn("CreateCheckout: quote calculation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	price := quote.TotalPrice
	freeBooking := isFreePromo(req.PromoCode)
	if freeBooking {
		price = 0
		uc.logger.Info("CreateCheckout: free promo applied for %s", req.UserEmail)
	}

	// 6. Создаем или обновляем аккаунт клиента
	account, err := uc.accountRepo.EnsureExists(ctx, req.UserID, req.UserEmail, req.UserName, req.UserPhone)
	if err != nil {
		uc.logger.Error("CreateCheckout: failed to ensure account: %v", err)
		return nil, fmt.Errorf("%w: failed to ensure account: %v", ErrInternal, err)
	}

	status := domain.StatusPending
	paymentStatus := domain.PaymentAwaiting
	if freeBooking {
		// Без оплаты бронирование подтверждается сразу
		status = domain.StatusConfirmed
		paymentStatus = domain.PaymentPaid
	}

	var result *domain.Booking

	// 7. Создаем бронирование в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Активные бронирования на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateCheckout: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.2. Авторитетная проверка: слот существует и длительность влезает
		candidates := domain.CandidateSlots(settings, req.Date)
		maxDuration := domain.MaxDurationForSlot(candidates, req.TimeSlot, nil)
		if maxDuration == 0 {
			uc.logger.Warn("CreateCheckout: slot %s is not in schedule for %s",
				req.TimeSlot, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}
		if req.DurationHours > maxDuration {
			uc.logger.Warn("CreateCheckout: duration %d exceeds schedule limit %d",
				req.DurationHours, maxDuration)
			return ErrInvalidDuration
		}

		// 7.3. Проверка пересечений с существующими бронированиями
		if overlapsAny(req.TimeSlot.Hour(), req.DurationHours, bookings) {
			uc.logger.Warn("CreateCheckout: slot %s+%dh on %s overlaps existing booking",
				req.TimeSlot, req.DurationHours, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		// 7.4. Сохраняем бронирование
		booking := &domain.Booking{
			UserID:        account.ID,
			UserEmail:     req.UserEmail,
			UserName:      req.UserName,
			UserPhone:     req.UserPhone,
			Date:          req.Date,
			TimeSlot:      req.TimeSlot,
			DurationHours: req.DurationHours,
			GroupSize:     req.GroupSize,
			Price:         price,
			Status:        status,
			PaymentStatus: paymentStatus,
			PromoCode:     req.PromoCode,
			Message:       req.Message,
			IsTestBooking: settings.IsTestMode,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateCheckout: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 8. Кэш доступности на эту дату устарел
	uc.invalidateCache(ctx, result)

	// 9. Бесплатное бронирование не требует платежной сессии
	if freeBooking {
		uc.notifyConfirmed(result)
		uc.logger.Info("CreateCheckout: booking id=%s confirmed without payment", result.ID)
		return &Response{
			BookingID:     result.ID,
			Status:        string(result.Status),
			PaymentStatus: string(result.PaymentStatus),
			Price:         result.Price,
		}, nil
	}

	// 10. Создаем checkout-сессию
	session, err := uc.payments.CreateCheckoutSession(stripeclient.CheckoutParams{
		BookingID: result.ID,
		Description: fmt.Sprintf("Karaoke box: %s %s, %dh, %d guests",
			result.Date.Format(domain.DateFormat), result.TimeSlot, result.DurationHours, result.GroupSize),
		AmountCents:   int64(math.Round(result.Price * 100)),
		Currency:      domain.DefaultCurrency,
		CustomerEmail: result.UserEmail,
		TestMode:      result.IsTestBooking,
	})
	if err != nil {
		uc.logger.Error("CreateCheckout: payment session failed for booking id=%s: %v", result.ID, err)
		// Бронирование без платежной сессии не должно держать слот
		if cancelErr := uc.bookingRepo.UpdateStatusGuarded(ctx, result.ID, domain.StatusPending, domain.StatusCancelled); cancelErr != nil {
			uc.logger.Error("CreateCheckout: failed to cancel booking id=%s after payment failure: %v",
				result.ID, cancelErr)
		}
		uc.invalidateCache(ctx, result)
		return nil, ErrPaymentFailed
	}

	// 11. Привязываем сессию к бронированию
	if err := uc.bookingRepo.SetPaymentSession(ctx, result.ID, session.ID); err != nil {
		uc.logger.Error("CreateCheckout: failed to store session id for booking id=%s: %v", result.ID, err)
		return nil, fmt.Errorf("%w: failed to store payment session: %v", ErrInternal, err)
	}

	// 12. Уведомляем администратора (best effort)
	if err := uc.mailer.SendAdminNewBooking(result); err != nil {
		uc.logger.Warn("CreateCheckout: admin notification failed for booking id=%s: %v", result.ID, err)
	}

	uc.logger.Info("CreateCheckout: booking id=%s created, session id=%s", result.ID, session.ID)

	return &Response{
		BookingID:     result.ID,
		Status:        string(result.Status),
		PaymentStatus: string(result.PaymentStatus),
		Price:         result.Price,
		CheckoutURL:   session.URL,
		SessionID:     session.ID,
	}, nil
}

// overlapsAny проверяет пересечение интервала [startHour, startHour+duration)
// с интервалами существующих бронирований
func overlapsAny(startHour, duration int, bookings []*domain.Booking) bool {
	if startHour < 0 {
		return true
	}
	end := startHour + duration

	for _, booking := range bookings {
		otherStart := booking.TimeSlot.Hour()
		if otherStart < 0 {
			continue
		}
		otherEnd := otherStart + booking.DurationHours
		if startHour < otherEnd && otherStart < end {
			return true
		}
	}
	return false
}

func (uc *UseCase) invalidateCache(ctx context.Context, booking *domain.Booking) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateDate(ctx, booking.Date); err != nil {
		uc.logger.Warn("CreateCheckout: cache invalidation failed for %s: %v",
			booking.Date.Format(domain.DateFormat), err)
	}
}

func (uc *UseCase) notifyConfirmed(booking *domain.Booking) {
	if err := uc.mailer.SendBookingConfirmation(booking); err != nil {
		uc.logger.Warn("CreateCheckout: confirmation email failed for booking id=%s: %v", booking.ID, err)
	}
	if err := uc.mailer.SendAdminNewBooking(booking); err != nil {
		uc.logger.Warn("CreateCheckout: admin notification failed for booking id=%s: %v", booking.ID, err)
	}
}
