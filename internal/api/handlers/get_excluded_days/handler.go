package get_excluded_days

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/KaraBox-BookingService/internal/api/handlers"
	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	getExcludedDays "github.com/m04kA/KaraBox-BookingService/internal/usecase/get_excluded_days"
)

const (
	msgMissingRange = "отсутствуют параметры from и to"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "некорректный диапазон дат"
)

// ExcludedDaysResponse HTTP response model
type ExcludedDaysResponse struct {
	Days []string `json:"days"` // Закрытые даты "YYYY-MM-DD"
}

type Handler struct {
	useCase GetExcludedDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetExcludedDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/excluded-days?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /availability/excluded-days - Missing range parameters")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /availability/excluded-days - Invalid from %q: %v", fromStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("GET /availability/excluded-days - Invalid to %q: %v", toStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getExcludedDays.Request{
		StartDate: from,
		EndDate:   to,
	})
	if err != nil {
		switch {
		case errors.Is(err, getExcludedDays.ErrInvalidInput):
			h.logger.Warn("GET /availability/excluded-days - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /availability/excluded-days - Failed: from=%s, to=%s, error=%v",
				fromStr, toStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &ExcludedDaysResponse{Days: result.Days})
}
