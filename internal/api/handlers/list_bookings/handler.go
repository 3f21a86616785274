package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/KaraBox-BookingService/internal/api/handlers"
	"github.com/m04kA/KaraBox-BookingService/internal/service/bookings"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
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

// Handle GET /api/v1/admin/bookings
// Query params: startDate, endDate, status, userEmail, includeDeleted, includeTest (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// 1. Получаем опциональные query параметры
	query := r.URL.Query()
	startDateStr := query.Get("startDate")
	endDateStr := query.Get("endDate")
	statusStr := query.Get("status")
	userEmailStr := query.Get("userEmail")
	includeDeletedStr := query.Get("includeDeleted")
	includeTestStr := query.Get("includeTest")

	// 2. Формируем запрос к сервису
	serviceReq, err := ToServiceRequest(startDateStr, endDateStr, statusStr, userEmailStr, includeDeletedStr, includeTestStr)
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// 3. Получаем список бронирований
	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
