package create_checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/KaraBox-BookingService/internal/api/handlers"
	createCheckout "github.com/m04kA/KaraBox-BookingService/internal/usecase/create_checkout"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgDayNotAvailable    = "выбранный день недоступен для бронирования"
	msgSlotTaken          = "выбранный временной слот уже занят"
	msgInvalidDuration    = "длительность превышает доступное время"
	msgPaymentFailed      = "не удалось создать платежную сессию"
)

type Handler struct {
	useCase CreateCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CreateCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /checkout - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createCheckout.ErrInvalidInput):
			h.logger.Warn("POST /checkout - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createCheckout.ErrDayNotAvailable):
			h.logger.Warn("POST /checkout - Day not available: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDayNotAvailable)

		case errors.Is(err, createCheckout.ErrSlotTaken):
			h.logger.Warn("POST /checkout - Slot taken: date=%s, slot=%s", req.Date, req.TimeSlot)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createCheckout.ErrInvalidDuration):
			h.logger.Warn("POST /checkout - Invalid duration: date=%s, slot=%s, duration=%d",
				req.Date, req.TimeSlot, req.DurationHours)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createCheckout.ErrPaymentFailed):
			h.logger.Error("POST /checkout - Payment session failed: date=%s, slot=%s", req.Date, req.TimeSlot)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentFailed)

		default:
			h.logger.Error("POST /checkout - Failed: email=%s, date=%s, error=%v",
				req.UserEmail, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
