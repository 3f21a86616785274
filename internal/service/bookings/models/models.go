package models

import (
	"errors"
	"time"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение бронирований с фильтрацией
type ListBookingsRequest struct {
	StartDate      *time.Time `json:"startDate,omitempty"`      // Начало периода (опционально)
	EndDate        *time.Time `json:"endDate,omitempty"`        // Конец периода (опционально)
	Status         *string    `json:"status,omitempty"`         // Фильтр по статусу (опционально)
	UserEmail      *string    `json:"userEmail,omitempty"`      // Фильтр по email клиента (опционально)
	IncludeDeleted bool       `json:"includeDeleted,omitempty"` // Включить удаленные записи
	IncludeTest    bool       `json:"includeTest,omitempty"`    // Включить тестовые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		UserEmail:      r.UserEmail,
		IncludeDeleted: r.IncludeDeleted,
		IncludeTest:    r.IncludeTest,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на изменение статуса бронирования
type UpdateStatusRequest struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string   `json:"id"`
	UserID        string   `json:"userId"`
	UserEmail     string   `json:"userEmail"`
	UserName      string   `json:"userName"`
	UserPhone     string   `json:"userPhone,omitempty"`
	Date          string   `json:"date"`     // "2026-09-04"
	TimeSlot      string   `json:"timeSlot"` // "14:00"
	DurationHours int      `json:"durationHours"`
	GroupSize     int      `json:"groupSize"`
	Price         float64  `json:"price"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"paymentStatus"`
	PromoCode     *string  `json:"promoCode,omitempty"`
	Message       *string  `json:"message,omitempty"`
	IsTestBooking bool     `json:"isTestBooking"`
	DeletedAt     *string  `json:"deletedAt,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:            booking.ID,
		UserID:        booking.UserID,
		UserEmail:     booking.UserEmail,
		UserName:      booking.UserName,
		UserPhone:     booking.UserPhone,
		Date:          booking.Date.Format(domain.DateFormat),
		TimeSlot:      booking.TimeSlot.String(),
		DurationHours: booking.DurationHours,
		GroupSize:     booking.GroupSize,
		Price:         booking.Price,
		Status:        string(booking.Status),
		PaymentStatus: string(booking.PaymentStatus),
		PromoCode:     booking.PromoCode,
		Message:       booking.Message,
		IsTestBooking: booking.IsTestBooking,
		CreatedAt:     booking.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     booking.UpdatedAt.Format(time.RFC3339),
	}

	if booking.DeletedAt != nil {
		deletedAt := booking.DeletedAt.Format(time.RFC3339)
		resp.DeletedAt = &deletedAt
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	items := make([]*BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		items = append(items, FromDomainBooking(booking))
	}
	return &BookingListResponse{
		Bookings: items,
		Total:    len(items),
	}
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return domain.BookingStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
