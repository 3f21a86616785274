package list_accounts

import (
	"net/http"

	"github.com/m04kA/KaraBox-BookingService/internal/api/handlers"
)

type Handler struct {
	service AccountService
	logger  Logger
}

func NewHandler(service AccountService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/accounts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/accounts - Failed to list accounts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/accounts - Accounts retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
