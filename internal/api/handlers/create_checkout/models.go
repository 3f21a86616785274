package create_checkout

import (
	"time"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	createCheckout "github.com/m04kA/KaraBox-BookingService/internal/usecase/create_checkout"
	"github.com/m04kA/KaraBox-BookingService/pkg/types"
)

// CreateCheckoutRequest HTTP request model
type CreateCheckoutRequest struct {
	UserID        string  `json:"userId,omitempty"`
	UserEmail     string  `json:"userEmail"`
	UserName      string  `json:"userName"`
	UserPhone     string  `json:"userPhone,omitempty"`
	Date          string  `json:"date"`     // "2026-09-04"
	TimeSlot      string  `json:"timeSlot"` // "14:00"
	DurationHours int     `json:"durationHours"`
	GroupSize     int     `json:"groupSize"`
	PromoCode     *string `json:"promoCode,omitempty"`
	Message       *string `json:"message,omitempty"`
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	BookingID     string  `json:"bookingId"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	Price         float64 `json:"price"`
	CheckoutURL   string  `json:"checkoutUrl,omitempty"`
	SessionID     string  `json:"sessionId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateCheckoutRequest) ToUseCaseRequest() (*createCheckout.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	timeSlot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &createCheckout.Request{
		UserID:        r.UserID,
		UserEmail:     r.UserEmail,
		UserName:      r.UserName,
		UserPhone:     r.UserPhone,
		Date:          date,
		TimeSlot:      timeSlot,
		DurationHours: r.DurationHours,
		GroupSize:     r.GroupSize,
		PromoCode:     r.PromoCode,
		Message:       r.Message,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createCheckout.Response) *CheckoutResponse {
	return &CheckoutResponse{
		BookingID:     resp.BookingID,
		Status:        resp.Status,
		PaymentStatus: resp.PaymentStatus,
		Price:         resp.Price,
		CheckoutURL:   resp.CheckoutURL,
		SessionID:     resp.SessionID,
	}
}
