package domain

import (
	"time"

	"github.com/m04kA/KaraBox-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentAwaiting PaymentStatus = "awaiting"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking represents a karaoke box reservation
type Booking struct {
	ID        string // UUID
	UserID    string // UUID пользователя из внешнего auth-провайдера
	UserEmail string
	UserName  string
	UserPhone string

	Date          time.Time        // Дата бронирования (без времени)
	TimeSlot      types.TimeString // Время начала ("20:00")
	DurationHours int              // Длительность в часах (1..4)
	GroupSize     int              // Количество человек

	Price         float64
	Status        BookingStatus
	PaymentStatus PaymentStatus

	// ID checkout-сессии платежного провайдера (nil до создания сессии
	// и для бесплатных бронирований по промокоду)
	PaymentSessionID *string

	PromoCode     *string
	Message       *string
	IsTestBooking bool

	// Soft delete: запись никогда не удаляется физически
	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its time slot
// Активное бронирование = не отменено и не удалено (soft delete)
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.DeletedAt == nil
}

// IsDeleted returns true if the booking has been soft-deleted
func (b *Booking) IsDeleted() bool {
	return b.DeletedAt != nil
}

// EndHour возвращает час окончания бронирования (полуинтервал [start, end))
func (b *Booking) EndHour() int {
	return b.TimeSlot.Hour() + b.DurationHours
}

// CanTransitionTo проверяет, допустим ли переход в указанный статус
// cancelled - терминальный статус, из него переходов нет
func (b *Booking) CanTransitionTo(status BookingStatus) bool {
	if b.Status == status {
		return false
	}

	switch b.Status {
	case StatusPending:
		return status == StatusConfirmed || status == StatusCancelled
	case StatusConfirmed:
		return status == StatusCancelled
	case StatusCancelled:
		return false
	default:
		return false
	}
}

// BookingsFilter фильтр для получения списка бронирований (админка)
type BookingsFilter struct {
	StartDate      *time.Time     // Начало периода (опционально)
	EndDate        *time.Time     // Конец периода (опционально)
	Status         *BookingStatus // Фильтр по статусу (опционально)
	UserEmail      *string        // Фильтр по email клиента (опционально)
	IncludeDeleted bool           // Включать ли soft-deleted записи
	IncludeTest    bool           // Включать ли тестовые бронирования
}
