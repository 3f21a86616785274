package create_checkout

import (
	"time"

	"github.com/m04kA/KaraBox-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования с оплатой
type Request struct {
	UserID        string           // ID аккаунта, пустой для новых клиентов
	UserEmail     string           // Email клиента
	UserName      string           // Имя клиента
	UserPhone     string           // Телефон клиента
	Date          time.Time        // Дата бронирования
	TimeSlot      types.TimeString // Стартовый слот
	DurationHours int              // Длительность в часах
	GroupSize     int              // Количество гостей
	PromoCode     *string          // Промокод (опционально)
	Message       *string          // Комментарий клиента (опционально)
}

// Response модель ответа на создание бронирования
type Response struct {
	BookingID     string  // ID созданного бронирования
	Status        string  // Статус бронирования
	PaymentStatus string  // Статус оплаты
	Price         float64 // Итоговая стоимость
	// CheckoutURL ссылка на платежную страницу
	// Пустая, если оплата не требуется (промокод полной скидки)
	CheckoutURL string
	SessionID   string // ID checkout-сессии, пустой без оплаты
}
