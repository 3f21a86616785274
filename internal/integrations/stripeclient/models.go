package stripeclient

// CheckoutParams параметры создания checkout-сессии
type CheckoutParams struct {
	BookingID   string
	Description string
	// AmountCents сумма в минимальных денежных единицах (центах)
	AmountCents int64
	Currency    string
	// CustomerEmail предзаполняет email на платежной странице
	CustomerEmail string
	// TestMode выбирает тестовый ключ Stripe вместо боевого
	TestMode bool
}

// CheckoutSession результат создания checkout-сессии
type CheckoutSession struct {
	ID  string
	URL string
}

// CompletedCheckout данные завершенной оплаты из webhook-события
type CompletedCheckout struct {
	SessionID string
	BookingID string
}
