package stripe_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/KaraBox-BookingService/internal/api/handlers"
	bookingsService "github.com/m04kA/KaraBox-BookingService/internal/service/bookings"
)

const (
	msgMissingSignature = "отсутствует заголовок Stripe-Signature"
	msgInvalidPayload   = "некорректное тело события"
)

// maxPayloadSize жесткий лимит на размер webhook-события
const maxPayloadSize = 1 << 20 // 1 MiB

type Handler struct {
	parser  EventParser
	service BookingService
	logger  Logger
}

func NewHandler(parser EventParser, service BookingService, logger Logger) *Handler {
	return &Handler{
		parser:  parser,
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/webhooks/stripe
// Аутентификации нет: проверка подписи события и есть авторизация.
// Stripe повторяет доставку при не-2xx ответах, поэтому повторные
// и чужие события получают 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	signature := r.Header.Get("Stripe-Signature")
	if signature == "" {
		h.logger.Warn("POST /webhooks/stripe - Missing signature header")
		handlers.RespondBadRequest(w, msgMissingSignature)
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadSize))
	if err != nil {
		h.logger.Warn("POST /webhooks/stripe - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	completed, err := h.parser.ParseCompletedCheckout(payload, signature)
	if err != nil {
		h.logger.Warn("POST /webhooks/stripe - Event rejected: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	// Событие другого типа: подтверждаем получение без обработки
	if completed == nil {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "skipped"})
		return
	}

	booking, err := h.service.ConfirmPayment(r.Context(), completed.SessionID)
	if err != nil {
		if errors.Is(err, bookingsService.ErrBookingNotFound) {
			// Повторная доставка или неизвестная сессия: не просим ретрай
			h.logger.Info("POST /webhooks/stripe - No pending booking for session=%s", completed.SessionID)
			handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "already_processed"})
			return
		}

		h.logger.Error("POST /webhooks/stripe - Failed to confirm session=%s: %v", completed.SessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /webhooks/stripe - Booking id=%s confirmed by session=%s",
		booking.ID, completed.SessionID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "confirmed"})
}
