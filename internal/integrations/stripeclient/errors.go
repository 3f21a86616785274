package stripeclient

import "errors"

var (
	// ErrCreateSession не удалось создать checkout-сессию
	ErrCreateSession = errors.New("stripeclient: failed to create checkout session")
	// ErrInvalidSignature подпись webhook-события не прошла проверку
	ErrInvalidSignature = errors.New("stripeclient: invalid webhook signature")
	// ErrDecodeEvent не удалось декодировать payload события
	ErrDecodeEvent = errors.New("stripeclient: failed to decode event payload")
)
