package update_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/KaraBox-BookingService/internal/api/handlers"
	"github.com/m04kA/KaraBox-BookingService/internal/service/settings"
	"github.com/m04kA/KaraBox-BookingService/internal/service/settings/models"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
	msgInvalidSettings = "некорректные настройки бронирования"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/settings
// Полная замена настроек: частичных обновлений нет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// 1. Декодируем тело запроса
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	// 2. Обновляем настройки (сервис выполнит валидацию)
	updated, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /admin/settings - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		default:
			h.logger.Error("PUT /admin/settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings - Settings updated successfully")
	handlers.RespondJSON(w, http.StatusOK, updated)
}
