package get_max_duration

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/KaraBox-BookingService/internal/api/handlers"
	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	getMaxDuration "github.com/m04kA/KaraBox-BookingService/internal/usecase/get_max_duration"
	"github.com/m04kA/KaraBox-BookingService/pkg/types"
)

const (
	msgMissingParams = "отсутствуют параметры date и slot"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSlot   = "некорректный формат слота, ожидается HH:MM"
)

// MaxDurationResponse HTTP response model
type MaxDurationResponse struct {
	MaxDuration int `json:"maxDuration"`
}

type Handler struct {
	useCase GetMaxDurationUseCase
	logger  Logger
}

func NewHandler(useCase GetMaxDurationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/max-duration?date=YYYY-MM-DD&slot=HH:MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	slotStr := r.URL.Query().Get("slot")
	if dateStr == "" || slotStr == "" {
		h.logger.Warn("GET /availability/max-duration - Missing parameters")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability/max-duration - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slot, err := types.NewTimeStringFromString(slotStr)
	if err != nil {
		h.logger.Warn("GET /availability/max-duration - Invalid slot %q: %v", slotStr, err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMaxDuration.Request{
		Date: date,
		Slot: slot,
	})
	if err != nil {
		switch {
		case errors.Is(err, getMaxDuration.ErrInvalidInput):
			h.logger.Warn("GET /availability/max-duration - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("GET /availability/max-duration - Failed: date=%s, slot=%s, error=%v",
				dateStr, slotStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &MaxDurationResponse{MaxDuration: result.MaxDuration})
}
