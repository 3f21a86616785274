package get_available_slots

import (
	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/KaraBox-BookingService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date       string   `json:"date"`  // "2026-09-04"
	Slots      []string `json:"slots"` // ["14:00", "15:00", ...]
	IsTestMode bool     `json:"isTestMode"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}
	return &SlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
		IsTestMode: resp.IsTestMode,
	}
}
