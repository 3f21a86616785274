package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/KaraBox-BookingService/internal/api/handlers"
	"github.com/m04kA/KaraBox-BookingService/internal/service/bookings"
	"github.com/m04kA/KaraBox-BookingService/internal/service/bookings/models"
)

const (
	msgMissingBookingID     = "не указан ID бронирования"
	msgInvalidBody          = "некорректное тело запроса"
	msgInvalidStatus        = "некорректный статус бронирования"
	msgNotFound             = "бронирование не найдено"
	msgTransitionNotAllowed = "переход в указанный статус недопустим"
	msgStatusConflict       = "статус бронирования изменился, повторите запрос"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// 1. Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	// 2. Декодируем тело запроса
	var payload UpdateStatusPayload
	if err := handlers.DecodeJSON(r, &payload); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	// 3. Меняем статус (сервис проверит допустимость перехода)
	booking, err := h.service.UpdateStatus(r.Context(), &models.UpdateStatusRequest{
		BookingID: bookingID,
		Status:    payload.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid status: booking_id=%s, status=%s",
				bookingID, payload.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrTransitionNotAllowed):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Transition not allowed: booking_id=%s, status=%s",
				bookingID, payload.Status)
			handlers.RespondConflict(w, msgTransitionNotAllowed)

		case errors.Is(err, bookings.ErrStatusConflict):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Concurrent status change: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgStatusConflict)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/status - Failed to update status: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/status - Status updated successfully: booking_id=%s, status=%s",
		bookingID, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
