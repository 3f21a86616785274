package get_price_quote

import (
	"fmt"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.GroupSize < domain.MinGroupSize || req.GroupSize > domain.MaxGroupSize {
		return fmt.Errorf("%w: groupSize must be between %d and %d",
			ErrInvalidInput, domain.MinGroupSize, domain.MaxGroupSize)
	}
	if req.DurationHours < 1 || req.DurationHours > domain.MaxBookingDurationHours {
		return fmt.Errorf("%w: durationHours must be between 1 and %d",
			ErrInvalidInput, domain.MaxBookingDurationHours)
	}
	return nil
}
