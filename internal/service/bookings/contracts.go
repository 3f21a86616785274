package bookings

import (
	"context"
	"time"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatusGuarded(ctx context.Context, id string, from, to domain.BookingStatus) error
	SoftDelete(ctx context.Context, id string) error
	ConfirmByPaymentSession(ctx context.Context, sessionID string) (*domain.Booking, error)
}

// Mailer интерфейс отправки уведомлений
type Mailer interface {
	SendBookingConfirmation(booking *domain.Booking) error
	SendStatusChanged(booking *domain.Booking) error
}

// AvailabilityCache интерфейс кэша доступных слотов
type AvailabilityCache interface {
	InvalidateDate(ctx context.Context, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
