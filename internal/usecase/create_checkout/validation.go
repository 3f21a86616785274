package create_checkout

import (
	"fmt"
	"strings"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.UserEmail) == "" || !strings.Contains(req.UserEmail, "@") {
		return fmt.Errorf("%w: valid userEmail is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.UserName) == "" {
		return fmt.Errorf("%w: userName is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.TimeSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeSlot: %v", ErrInvalidInput, err)
	}

	if req.DurationHours < 1 || req.DurationHours > domain.MaxBookingDurationHours {
		return fmt.Errorf("%w: durationHours must be between 1 and %d",
			ErrInvalidInput, domain.MaxBookingDurationHours)
	}

	if req.GroupSize < domain.MinGroupSize || req.GroupSize > domain.MaxGroupSize {
		return fmt.Errorf("%w: groupSize must be between %d and %d",
			ErrInvalidInput, domain.MinGroupSize, domain.MaxGroupSize)
	}

	if req.Message != nil && len(*req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message must not exceed %d characters",
			ErrInvalidInput, domain.MaxMessageLength)
	}

	return nil
}

// isFreePromo проверяет, дает ли промокод полную скидку
func isFreePromo(promoCode *string) bool {
	return promoCode != nil && strings.TrimSpace(*promoCode) == domain.PromoCodeFree
}
