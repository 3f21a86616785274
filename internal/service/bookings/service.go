package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/KaraBox-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/KaraBox-BookingService/internal/service/bookings/models"
)

// Service сервис админ-операций над бронированиями
// Авторизация выполняется в middleware: сюда запросы попадают
// уже с проверенной ролью администратора
type Service struct {
	bookingRepo BookingRepository
	mailer      Mailer
	cache       AvailabilityCache
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
// cache может быть nil, тогда инвалидация пропускается
func NewService(
	bookingRepo BookingRepository,
	mailer Mailer,
	cache AvailabilityCache,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		mailer:      mailer,
		cache:       cache,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID, включая удаленные записи
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией по периоду, статусу и клиенту
// По умолчанию удаленные и тестовые записи скрыты
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, includeDeleted=%t, includeTest=%t",
		req.IncludeDeleted, req.IncludeTest)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus изменяет статус бронирования
// Единственный путь смены статуса: проверка допустимости перехода,
// условное обновление, затем best-effort уведомление клиента.
// Ошибка письма не откатывает смену статуса
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%s, target status=%s", req.BookingID, req.Status)

	targetStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, req.BookingID)
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if booking.IsDeleted() {
		s.logger.Warn("UpdateStatus: booking id=%s is deleted", req.BookingID)
		return nil, ErrBookingNotFound
	}

	if !booking.CanTransitionTo(targetStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%s",
			booking.Status, targetStatus, req.BookingID)
		return nil, ErrTransitionNotAllowed
	}

	// Условное обновление защищает от гонки двух администраторов
	if err := s.bookingRepo.UpdateStatusGuarded(ctx, req.BookingID, booking.Status, targetStatus); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrStatusConflict):
			s.logger.Warn("UpdateStatus: concurrent status change for booking id=%s", req.BookingID)
			return nil, ErrStatusConflict
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		default:
			s.logger.Error("UpdateStatus: failed to update booking id=%s: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	booking.Status = targetStatus

	// Уведомление и кэш не участвуют в транзакции
	if err := s.mailer.SendStatusChanged(booking); err != nil {
		s.logger.Warn("UpdateStatus: notification failed for booking id=%s: %v", req.BookingID, err)
	}
	s.invalidateCache(ctx, booking)

	s.logger.Info("UpdateStatus: booking id=%s -> %s", req.BookingID, targetStatus)
	return models.FromDomainBooking(booking), nil
}

// SoftDelete помечает бронирование удаленным, запись остается в истории
func (s *Service) SoftDelete(ctx context.Context, id string) error {
	s.logger.Info("SoftDelete: booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("SoftDelete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("SoftDelete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: SoftDelete - repository error: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Уже удалено
			return ErrBookingNotFound
		}
		s.logger.Error("SoftDelete: failed to delete booking id=%s: %v", id, err)
		return fmt.Errorf("%w: SoftDelete - repository error: %v", ErrInternal, err)
	}

	// Удаление освобождает слоты
	s.invalidateCache(ctx, booking)

	s.logger.Info("SoftDelete: booking id=%s deleted", id)
	return nil
}

// ConfirmPayment подтверждает бронирование по ID оплаченной checkout-сессии
// Повторная доставка webhook-события возвращает ErrBookingNotFound:
// строка в статусе pending уже не существует
func (s *Service) ConfirmPayment(ctx context.Context, sessionID string) (*models.BookingResponse, error) {
	s.logger.Info("ConfirmPayment: session id=%s", sessionID)

	booking, err := s.bookingRepo.ConfirmByPaymentSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("ConfirmPayment: no pending booking for session id=%s", sessionID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("ConfirmPayment: repository error for session id=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: ConfirmPayment - repository error: %v", ErrInternal, err)
	}

	if err := s.mailer.SendBookingConfirmation(booking); err != nil {
		s.logger.Warn("ConfirmPayment: confirmation email failed for booking id=%s: %v", booking.ID, err)
	}
	s.invalidateCache(ctx, booking)

	s.logger.Info("ConfirmPayment: booking id=%s confirmed", booking.ID)
	return models.FromDomainBooking(booking), nil
}

func (s *Service) invalidateCache(ctx context.Context, booking *domain.Booking) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateDate(ctx, booking.Date); err != nil {
		s.logger.Warn("cache invalidation failed for %s: %v",
			booking.Date.Format(domain.DateFormat), err)
	}
}
