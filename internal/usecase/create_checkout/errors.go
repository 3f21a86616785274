package create_checkout

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_checkout: invalid input data")

	// ErrDayNotAvailable возвращается, когда день закрыт для бронирования
	ErrDayNotAvailable = errors.New("create_checkout: day is not available for booking")

	// ErrSlotTaken возвращается, когда запрошенный интервал пересекается с существующим бронированием
	ErrSlotTaken = errors.New("create_checkout: slot is already taken")

	// ErrInvalidDuration возвращается, когда длительность не влезает в расписание дня
	ErrInvalidDuration = errors.New("create_checkout: duration exceeds available hours")

	// ErrPaymentFailed возвращается, когда не удалось создать платежную сессию
	ErrPaymentFailed = errors.New("create_checkout: failed to create payment session")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_checkout: internal error")
)
