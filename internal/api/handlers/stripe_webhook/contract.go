package stripe_webhook

import (
	"context"

	"github.com/m04kA/KaraBox-BookingService/internal/integrations/stripeclient"
	"github.com/m04kA/KaraBox-BookingService/internal/service/bookings/models"
)

// EventParser интерфейс проверки подписи и разбора webhook-событий
type EventParser interface {
	ParseCompletedCheckout(payload []byte, signature string) (*stripeclient.CompletedCheckout, error)
}

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	ConfirmPayment(ctx context.Context, sessionID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
