package update_booking_status

// UpdateStatusPayload тело запроса на изменение статуса
type UpdateStatusPayload struct {
	Status string `json:"status"`
}
