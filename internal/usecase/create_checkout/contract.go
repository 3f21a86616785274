package create_checkout

import (
	"context"
	"time"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	"github.com/m04kA/KaraBox-BookingService/internal/integrations/stripeclient"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetActiveByDate внутри транзакции блокирует строки (FOR UPDATE)
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	SetPaymentSession(ctx context.Context, id string, sessionID string) error
	UpdateStatusGuarded(ctx context.Context, id string, from, to domain.BookingStatus) error
}

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetBookingSettings(ctx context.Context) (*domain.BookingSettings, error)
	GetBaseRates(ctx context.Context) (*domain.BaseRates, error)
}

// AccountRepository интерфейс репозитория аккаунтов
type AccountRepository interface {
	EnsureExists(ctx context.Context, id, email, name, phone string) (*domain.Account, error)
}

// PaymentProvider интерфейс платежного провайдера
type PaymentProvider interface {
	CreateCheckoutSession(params stripeclient.CheckoutParams) (*stripeclient.CheckoutSession, error)
}

// Mailer интерфейс отправки уведомлений
type Mailer interface {
	SendBookingConfirmation(booking *domain.Booking) error
	SendAdminNewBooking(booking *domain.Booking) error
}

// AvailabilityCache интерфейс кэша доступных слотов
type AvailabilityCache interface {
	InvalidateDate(ctx context.Context, date time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
