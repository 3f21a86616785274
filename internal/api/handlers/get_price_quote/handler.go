package get_price_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/KaraBox-BookingService/internal/api/handlers"
	getPriceQuote "github.com/m04kA/KaraBox-BookingService/internal/usecase/get_price_quote"
)

const (
	msgMissingParams = "отсутствуют параметры groupSize и duration"
	msgInvalidParams = "некорректные параметры расчета стоимости"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	BaseHourlyPrice float64 `json:"baseHourlyPrice"`
	TotalPrice      float64 `json:"totalPrice"`
	DiscountAmount  float64 `json:"discountAmount"`
	DiscountPercent int     `json:"discountPercent"`
}

type Handler struct {
	useCase GetPriceQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetPriceQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/price-quote?groupSize=N&duration=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	groupSizeStr := r.URL.Query().Get("groupSize")
	durationStr := r.URL.Query().Get("duration")
	if groupSizeStr == "" || durationStr == "" {
		h.logger.Warn("GET /price-quote - Missing parameters")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	groupSize, err := strconv.Atoi(groupSizeStr)
	if err != nil {
		h.logger.Warn("GET /price-quote - Invalid groupSize %q: %v", groupSizeStr, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /price-quote - Invalid duration %q: %v", durationStr, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getPriceQuote.Request{
		GroupSize:     groupSize,
		DurationHours: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getPriceQuote.ErrInvalidInput):
			h.logger.Warn("GET /price-quote - Invalid input: groupSize=%d, duration=%d", groupSize, duration)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /price-quote - Failed: groupSize=%d, duration=%d, error=%v",
				groupSize, duration, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &QuoteResponse{
		BaseHourlyPrice: result.BaseHourlyPrice,
		TotalPrice:      result.TotalPrice,
		DiscountAmount:  result.DiscountAmount,
		DiscountPercent: result.DiscountPercent,
	})
}
